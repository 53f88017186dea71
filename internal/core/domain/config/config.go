/*
Package config defines the user-tunable settings of the shell.
*/
package config

// DefaultPrompt is printed before each line when no prompt is configured.
const DefaultPrompt = "$ "

/*
Config holds the settings read from the configuration file. Pointer fields
distinguish "not set" from the zero value so defaults can be applied.
*/
type Config struct {
	Prompt       *string `yaml:"prompt"`
	Color        *bool   `yaml:"color"`
	Verbose      *bool   `yaml:"verbose"`
	AlwaysPrompt *bool   `yaml:"always_prompt"`
}

// Settings is the resolved form of Config, with every default applied.
type Settings struct {
	Prompt       string
	Color        bool
	Verbose      bool
	AlwaysPrompt bool
}

// Resolve applies defaults to every field that was not set.
func (c Config) Resolve() Settings {
	s := Settings{
		Prompt: DefaultPrompt,
		Color:  true,
	}
	if c.Prompt != nil {
		s.Prompt = *c.Prompt
	}
	if c.Color != nil {
		s.Color = *c.Color
	}
	if c.Verbose != nil {
		s.Verbose = *c.Verbose
	}
	if c.AlwaysPrompt != nil {
		s.AlwaysPrompt = *c.AlwaysPrompt
	}
	return s
}
