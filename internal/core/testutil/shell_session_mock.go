package testutil

import (
	"errors"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

// MockShellSession is a mock implementation of ports.ShellSession.
type MockShellSession struct {
	ExecuteFunc  func(line string) (command.Command, error)
	ExecuteCalls []string
}

func (m *MockShellSession) Execute(line string) (command.Command, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, line)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(line)
	}
	return command.Command{}, errors.New("MockShellSession: ExecuteFunc not implemented")
}

var _ ports.ShellSession = (*MockShellSession)(nil)
