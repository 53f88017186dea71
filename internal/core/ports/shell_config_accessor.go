package ports

import "github.com/AntonioJCosta/tinysh/internal/core/domain/config"

/*
ShellConfigAccessor defines the interface for reading the shell's own
configuration file. This is a driven port, typically implemented by a
repository adapter that understands the file format.
*/
type ShellConfigAccessor interface {
	/*
	   Load reads the configuration file. A missing or empty file yields the
	   defaults and no error.
	*/
	Load() (config.Config, error)

	// Path returns the location of the configuration file.
	Path() string
}
