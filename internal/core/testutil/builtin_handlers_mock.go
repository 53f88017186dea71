package testutil

import (
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

// MockBuiltinHandlers is a mock implementation of ports.BuiltinHandlers.
// Calls records the handler name and arguments of every invocation.
type MockBuiltinHandlers struct {
	EchoFunc func(args []string) error
	ExitFunc func(args []string) error
	TypeFunc func(args []string) error
	CdFunc   func(args []string) error
	PwdFunc  func(args []string) error

	Calls []BuiltinCall
}

// BuiltinCall is one recorded call on MockBuiltinHandlers.
type BuiltinCall struct {
	Handler string
	Args    []string
}

func (m *MockBuiltinHandlers) call(handler string, fn func([]string) error, args []string) error {
	m.Calls = append(m.Calls, BuiltinCall{Handler: handler, Args: args})
	if fn != nil {
		return fn(args)
	}
	return nil
}

func (m *MockBuiltinHandlers) Echo(args []string) error { return m.call("echo", m.EchoFunc, args) }
func (m *MockBuiltinHandlers) Exit(args []string) error { return m.call("exit", m.ExitFunc, args) }
func (m *MockBuiltinHandlers) Type(args []string) error { return m.call("type", m.TypeFunc, args) }
func (m *MockBuiltinHandlers) Cd(args []string) error   { return m.call("cd", m.CdFunc, args) }
func (m *MockBuiltinHandlers) Pwd(args []string) error  { return m.call("pwd", m.PwdFunc, args) }

var _ ports.BuiltinHandlers = (*MockBuiltinHandlers)(nil)
