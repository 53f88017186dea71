package session

import (
	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
	"github.com/AntonioJCosta/tinysh/internal/logging"
)

type service struct {
	tokenizer  ports.Tokenizer
	classifier ports.Classifier
	dispatcher ports.Dispatcher
	logger     *logging.Logger
}

// NewService creates the line session that ties tokenizing, classification
// and dispatch together.
// It panics if any dependency is nil.
func NewService(
	tokenizer ports.Tokenizer,
	classifier ports.Classifier,
	dispatcher ports.Dispatcher,
	logger *logging.Logger,
) ports.ShellSession {
	if tokenizer == nil {
		panic("tokenizer cannot be nil")
	}
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if dispatcher == nil {
		panic("dispatcher cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &service{
		tokenizer:  tokenizer,
		classifier: classifier,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Execute runs one line. Errors from each stage are returned as they were
// produced; the command is returned alongside a dispatch error.
func (s *service) Execute(line string) (command.Command, error) {
	tokens, err := s.tokenizer.Tokenize(line)
	if err != nil {
		return command.Command{}, err
	}

	cmd, err := s.classifier.Classify(tokens)
	if err != nil {
		return command.Command{}, err
	}
	if cmd.Kind.IsBuiltin() {
		s.logger.VerboseErrf(logging.Yellow, "builtin %s", cmd.Kind)
	} else {
		s.logger.VerboseErrf(logging.Yellow, "resolved %s -> %s", cmd.Name, cmd.Path)
	}

	return cmd, s.dispatcher.Run(cmd)
}
