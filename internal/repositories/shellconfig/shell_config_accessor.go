package shellconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/config"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

const configDir = ".tinysh"
const configFilename = "config.yaml"

// DefaultPath returns the configuration file location under home.
func DefaultPath(home string) string {
	return filepath.Join(home, configDir, configFilename)
}

// ShellConfigAccessor reads the shell's YAML configuration file.
type ShellConfigAccessor struct {
	path string
	home string
}

// NewShellConfigAccessor creates a ShellConfigAccessor for the file at path.
// An empty path means there is no file to read. home is only used to shorten
// paths in messages and may be empty.
func NewShellConfigAccessor(path, home string) ports.ShellConfigAccessor {
	return &ShellConfigAccessor{path: path, home: home}
}

// Path implements the ports.ShellConfigAccessor interface.
func (sca *ShellConfigAccessor) Path() string {
	return sca.path
}

// Load implements the ports.ShellConfigAccessor interface.
// A missing file, an empty file, or one holding only comments yields an empty Config.
func (sca *ShellConfigAccessor) Load() (config.Config, error) {
	if sca.path == "" {
		return config.Config{}, nil
	}
	data, err := os.ReadFile(sca.path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Config{}, nil
		}
		return config.Config{}, fmt.Errorf("failed to read config file %s: %w", toUserFriendlyPath(sca.path, sca.home), err)
	}

	cfg, err := decodeConfig(data)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to parse config file %s: %w", toUserFriendlyPath(sca.path, sca.home), err)
	}
	return cfg, nil
}
