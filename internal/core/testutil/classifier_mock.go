package testutil

import (
	"errors"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

// MockClassifier is a mock implementation of ports.Classifier.
type MockClassifier struct {
	ClassifyFunc func(tokens []string) (command.Command, error)
}

func (m *MockClassifier) Classify(tokens []string) (command.Command, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(tokens)
	}
	return command.Command{}, errors.New("MockClassifier: ClassifyFunc not implemented")
}

// MockDispatcher is a mock implementation of ports.Dispatcher.
type MockDispatcher struct {
	RunFunc  func(cmd command.Command) error
	RunCalls []command.Command
}

func (m *MockDispatcher) Run(cmd command.Command) error {
	m.RunCalls = append(m.RunCalls, cmd)
	if m.RunFunc != nil {
		return m.RunFunc(cmd)
	}
	return nil
}

var (
	_ ports.Classifier = (*MockClassifier)(nil)
	_ ports.Dispatcher = (*MockDispatcher)(nil)
)
