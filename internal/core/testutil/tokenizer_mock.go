package testutil

import (
	"bufio"
	"strings"

	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

// MockTokenizer is a mock implementation of ports.Tokenizer.
type MockTokenizer struct {
	// TokenizeFunc allows you to set a custom function for the Tokenize method.
	TokenizeFunc func(line string) ([]string, error)
	// ReadLineFunc allows you to set a custom function for the ReadLine method.
	ReadLineFunc func(r *bufio.Reader) (string, error)
	// TokenizeCalls keeps track of the arguments passed to Tokenize.
	TokenizeCalls []string
}

// NewMockTokenizer creates a new MockTokenizer.
func NewMockTokenizer() *MockTokenizer {
	return &MockTokenizer{
		TokenizeCalls: make([]string, 0),
	}
}

// Tokenize calls TokenizeFunc if it's set, otherwise splits on whitespace.
func (m *MockTokenizer) Tokenize(line string) ([]string, error) {
	m.TokenizeCalls = append(m.TokenizeCalls, line)
	if m.TokenizeFunc != nil {
		return m.TokenizeFunc(line)
	}
	return strings.Fields(line), nil
}

// ReadLine calls ReadLineFunc if it's set, otherwise reads up to a newline.
func (m *MockTokenizer) ReadLine(r *bufio.Reader) (string, error) {
	if m.ReadLineFunc != nil {
		return m.ReadLineFunc(r)
	}
	line, err := r.ReadString('\n')
	return strings.TrimSuffix(line, "\n"), err
}

// Ensure MockTokenizer satisfies the Tokenizer interface.
var _ ports.Tokenizer = (*MockTokenizer)(nil)
