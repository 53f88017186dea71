package classification

import (
	"strings"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
	"github.com/AntonioJCosta/tinysh/internal/core/domain/shellerror"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

type service struct {
	resolver ports.PathResolver
}

// NewService creates a new command classification service.
// It panics if the resolver is nil.
func NewService(resolver ports.PathResolver) ports.Classifier {
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	return &service{resolver: resolver}
}

// Classify decides which kind of command the token stream names.
// Builtins are matched before the search path is consulted.
func (s *service) Classify(tokens []string) (command.Command, error) {
	if len(tokens) == 0 {
		return command.Command{}, shellerror.ErrNoOp
	}

	name := strings.TrimSpace(tokens[0])
	if kind, ok := command.BuiltinKind(name); ok {
		return command.Command{Kind: kind, Args: tokens, Name: name}, nil
	}

	path, found := s.resolver.Resolve(name)
	if !found {
		return command.Command{}, &shellerror.CommandNotFoundError{Name: name}
	}
	return command.Command{
		Kind: command.KindExecutable,
		Args: tokens,
		Name: name,
		Path: path,
	}, nil
}
