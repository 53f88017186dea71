package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/config"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
	"github.com/AntonioJCosta/tinysh/internal/handlers/ui"
	"github.com/AntonioJCosta/tinysh/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// SessionFactory builds the line session once the output settings are known.
type SessionFactory func(logger *logging.Logger) ports.ShellSession

// ConfigOpener returns an accessor for the configuration file at path.
type ConfigOpener func(path string) ports.ShellConfigAccessor

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	configPath string
	prompt     string
	noColor    bool
	verbose    bool
}

// NewRootCommand creates the 'tinysh' root command, which runs the shell and hosts its subcommands.
func NewRootCommand(
	version string,
	defaultConfigPath string,
	openConfig ConfigOpener,
	tokenizer ports.Tokenizer,
	newSession SessionFactory,
) *cobra.Command {
	flags := &rootFlags{}
	var settings config.Settings
	var accessor ports.ShellConfigAccessor

	rootCmd := &cobra.Command{
		Use:   "tinysh",
		Short: "tinysh is a small interactive command shell.",
		Long: `tinysh reads one line at a time, splits it into words honoring quotes,
and runs it as a builtin (cd, echo, exit, pwd, type) or as a program found on PATH.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if openConfig == nil {
				return fmt.Errorf("config opener not initialized for command %s", cmd.Name())
			}
			accessor = openConfig(flags.configPath)
			resolved, err := loadSettings(cmd, flags, accessor)
			if err != nil {
				return err
			}
			settings = resolved
			if !settings.Color {
				ui.SetColorEnabled(false)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if tokenizer == nil || newSession == nil {
				return fmt.Errorf("shell session not initialized for command %s", cmd.Name())
			}
			return runShell(cmd, settings, accessor.Path(), tokenizer, newSession)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", defaultConfigPath, "Path to the YAML configuration file.")
	pf.StringVarP(&flags.prompt, "prompt", "p", config.DefaultPrompt, "Prompt printed before each line.")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output.")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Trace how each command is resolved.")

	rootCmd.AddCommand(NewBuiltinsCommand())

	return rootCmd
}

// loadSettings reads the configuration file and lets explicitly set flags override it.
func loadSettings(cmd *cobra.Command, flags *rootFlags, accessor ports.ShellConfigAccessor) (config.Settings, error) {
	cfg, err := accessor.Load()
	if err != nil {
		return config.Settings{}, fmt.Errorf("could not load configuration: %w", err)
	}

	settings := cfg.Resolve()
	if cmd.Flags().Changed("prompt") {
		settings.Prompt = flags.prompt
	}
	if flags.noColor {
		settings.Color = false
	}
	if cmd.Flags().Changed("verbose") {
		settings.Verbose = flags.verbose
	}
	return settings, nil
}

// runShell contains the core logic for the root command.
func runShell(
	cmd *cobra.Command,
	settings config.Settings,
	configPath string,
	tokenizer ports.Tokenizer,
	newSession SessionFactory,
) error {
	logger := &logging.Logger{
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Verbose: settings.Verbose,
		Color:   settings.Color,
	}
	logger.VerboseErrf(logging.Cyan, "config: %s", configPath)

	in := cmd.InOrStdin()
	l := &loop{
		tokenizer:  tokenizer,
		session:    newSession(logger),
		logger:     logger,
		prompt:     settings.Prompt,
		showPrompt: settings.AlwaysPrompt || isTerminal(in),
	}

	if code := l.run(in); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// isTerminal reports whether r is a file attached to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
