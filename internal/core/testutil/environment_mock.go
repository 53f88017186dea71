package testutil

import (
	"errors"

	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

// MockEnvironment is an in-memory ports.Environment. Wd holds the working
// directory Chdir writes and Getwd reads; the Func fields override behavior.
type MockEnvironment struct {
	Wd   string
	Home string
	Vars map[string]string

	GetwdFunc   func() (string, error)
	ChdirFunc   func(dir string) error
	HomeDirFunc func() (string, error)

	ChdirCalls []string
}

// Getwd mocks the Getwd method.
func (m *MockEnvironment) Getwd() (string, error) {
	if m.GetwdFunc != nil {
		return m.GetwdFunc()
	}
	return m.Wd, nil
}

// Chdir mocks the Chdir method. Without ChdirFunc every directory is accepted.
func (m *MockEnvironment) Chdir(dir string) error {
	m.ChdirCalls = append(m.ChdirCalls, dir)
	if m.ChdirFunc != nil {
		if err := m.ChdirFunc(dir); err != nil {
			return err
		}
	}
	m.Wd = dir
	return nil
}

// HomeDir mocks the HomeDir method.
func (m *MockEnvironment) HomeDir() (string, error) {
	if m.HomeDirFunc != nil {
		return m.HomeDirFunc()
	}
	if m.Home == "" {
		return "", errors.New("MockEnvironment: home directory not set")
	}
	return m.Home, nil
}

// LookupEnv mocks the LookupEnv method.
func (m *MockEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m.Vars[key]
	return v, ok
}

var _ ports.Environment = (*MockEnvironment)(nil)
