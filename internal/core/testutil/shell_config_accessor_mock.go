package testutil

import (
	"errors"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/config"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

// MockShellConfigAccessor is a mock implementation of ports.ShellConfigAccessor for testing.
type MockShellConfigAccessor struct {
	LoadFunc func() (config.Config, error)
	PathFunc func() string
}

func (m *MockShellConfigAccessor) Load() (config.Config, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return config.Config{}, errors.New("MockShellConfigAccessor: LoadFunc not implemented")
}

func (m *MockShellConfigAccessor) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return ""
}

var _ ports.ShellConfigAccessor = (*MockShellConfigAccessor)(nil)
