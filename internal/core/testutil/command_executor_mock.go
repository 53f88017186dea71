package testutil

import (
	"errors"

	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(path, name string, args []string) (int, error)
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(path, name string, args []string) (int, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(path, name, args)
	}
	return -1, errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}

var _ ports.CommandExecutor = (*MockCommandExecutor)(nil)
