package osenv

import (
	"os"

	"github.com/AntonioJCosta/tinysh/internal/core/ports"
	"github.com/mitchellh/go-homedir"
)

// OSEnvironment implements ports.Environment on top of the running process.
type OSEnvironment struct{}

// NewOSEnvironment creates a new OSEnvironment.
func NewOSEnvironment() ports.Environment {
	return &OSEnvironment{}
}

// Getwd returns the process working directory.
func (e *OSEnvironment) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir changes the process working directory.
func (e *OSEnvironment) Chdir(dir string) error {
	return os.Chdir(dir)
}

// HomeDir returns the current user's home directory.
func (e *OSEnvironment) HomeDir() (string, error) {
	return homedir.Dir()
}

// LookupEnv reads an environment variable.
func (e *OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
