package testutil

import "github.com/AntonioJCosta/tinysh/internal/core/ports"

// MockPathResolver is a mock implementation of ports.PathResolver.
type MockPathResolver struct {
	ResolveFunc  func(name string) (string, bool)
	ResolveCalls []string
}

// Resolve mocks the Resolve method. Without ResolveFunc nothing resolves.
func (m *MockPathResolver) Resolve(name string) (string, bool) {
	m.ResolveCalls = append(m.ResolveCalls, name)
	if m.ResolveFunc != nil {
		return m.ResolveFunc(name)
	}
	return "", false
}

// StaticPathResolver returns a MockPathResolver backed by a fixed name-to-path table.
func StaticPathResolver(paths map[string]string) *MockPathResolver {
	return &MockPathResolver{
		ResolveFunc: func(name string) (string, bool) {
			p, ok := paths[name]
			return p, ok
		},
	}
}

var _ ports.PathResolver = (*MockPathResolver)(nil)
