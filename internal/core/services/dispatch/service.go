package dispatch

import (
	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
	"github.com/AntonioJCosta/tinysh/internal/core/domain/shellerror"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

type service struct {
	builtins ports.BuiltinHandlers
	executor ports.CommandExecutor
}

// NewService creates a new dispatcher.
// It panics if builtins or executor is nil.
func NewService(builtins ports.BuiltinHandlers, executor ports.CommandExecutor) ports.Dispatcher {
	if builtins == nil {
		panic("builtins cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &service{builtins: builtins, executor: executor}
}

// Run hands cmd to the handler for its kind. Each builtin kind and
// KindExecutable has its own case; anything else is not found.
func (s *service) Run(cmd command.Command) error {
	switch cmd.Kind {
	case command.KindEcho:
		return s.builtins.Echo(cmd.Args)
	case command.KindExit:
		return s.builtins.Exit(cmd.Args)
	case command.KindType:
		return s.builtins.Type(cmd.Args)
	case command.KindCd:
		return s.builtins.Cd(cmd.Args)
	case command.KindPwd:
		return s.builtins.Pwd(cmd.Args)
	case command.KindExecutable:
		_, err := s.executor.Execute(cmd.Path, cmd.Name, cmd.Args)
		return err
	default:
		return &shellerror.CommandNotFoundError{Name: cmd.Name}
	}
}
