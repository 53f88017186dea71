package ports

import "github.com/AntonioJCosta/tinysh/internal/core/domain/command"

// Classifier maps a token stream to a command kind.
type Classifier interface {
	// Classify returns shellerror.ErrNoOp for an empty token stream and a
	// *shellerror.CommandNotFoundError when the name cannot be resolved.
	Classify(tokens []string) (command.Command, error)
}
