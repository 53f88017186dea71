package builtins

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
	"github.com/AntonioJCosta/tinysh/internal/core/domain/shellerror"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

type service struct {
	out      io.Writer
	env      ports.Environment
	resolver ports.PathResolver
}

// NewService creates the builtin handlers. Output goes to out; the working
// and home directories are reached only through env.
// It panics if any dependency is nil.
func NewService(out io.Writer, env ports.Environment, resolver ports.PathResolver) ports.BuiltinHandlers {
	if out == nil {
		panic("output writer cannot be nil")
	}
	if env == nil {
		panic("environment cannot be nil")
	}
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	return &service{out: out, env: env, resolver: resolver}
}

// Echo writes its arguments joined by single spaces. With no arguments it
// writes an empty line.
func (s *service) Echo(args []string) error {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if _, err := fmt.Fprintln(s.out, strings.Join(rest, " ")); err != nil {
		return writeError(command.KindEcho, "echo", err)
	}
	return nil
}

// Exit has no effect here. The caller ends the session once it sees KindExit.
func (s *service) Exit(_ []string) error {
	return nil
}

// Pwd writes the working directory.
func (s *service) Pwd(_ []string) error {
	wd, err := s.env.Getwd()
	if err != nil {
		return &shellerror.CommandError{
			Kind:   command.KindPwd,
			Name:   "pwd",
			Msg:    osErrorText(err),
			Status: shellerror.Errno(err),
			Err:    err,
		}
	}
	if _, err := fmt.Fprintln(s.out, wd); err != nil {
		return writeError(command.KindPwd, "pwd", err)
	}
	return nil
}

// Cd changes the working directory. A bare cd or "~" goes home; "~/sub"
// is taken relative to home.
func (s *service) Cd(args []string) error {
	target := "~"
	if len(args) > 1 {
		target = args[1]
	}

	dir, err := s.expandHome(target)
	if err != nil {
		return &shellerror.CommandError{
			Kind:   command.KindCd,
			Name:   "cd",
			Msg:    "failed to locate home directory",
			Status: shellerror.Status(1),
			Err:    err,
		}
	}

	if err := s.env.Chdir(dir); err != nil {
		return &shellerror.CommandError{
			Kind:   command.KindCd,
			Name:   "cd",
			Msg:    fmt.Sprintf("%s: %s", target, chdirFailureText(err)),
			Status: shellerror.Errno(err),
			Err:    err,
		}
	}
	return nil
}

// Type reports how its first argument would be run.
func (s *service) Type(args []string) error {
	if len(args) < 2 {
		return &shellerror.CommandError{
			Kind:   command.KindType,
			Name:   "type",
			Msg:    "missing argument",
			Status: shellerror.Status(1),
		}
	}

	name := args[1]
	var line string
	if command.IsBuiltin(name) {
		line = fmt.Sprintf("%s is a shell builtin", name)
	} else if path, ok := s.resolver.Resolve(name); ok {
		line = fmt.Sprintf("%s is %s", name, path)
	} else {
		return &shellerror.CommandError{
			Kind:   command.KindUnresolved,
			Name:   name,
			Msg:    "not found",
			Status: shellerror.Status(1),
		}
	}

	if _, err := fmt.Fprintln(s.out, line); err != nil {
		return writeError(command.KindType, "type", err)
	}
	return nil
}
