/*
Package command defines the core domain entities for a classified command line.
*/
package command

import (
	"strconv"
	"strings"
)

// Kind identifies what a command line resolves to. The set is closed:
// adding a builtin means adding a constant here and a case to the dispatcher.
type Kind int

const (
	KindUnresolved Kind = iota
	KindEcho
	KindExit
	KindType
	KindCd
	KindPwd
	KindExecutable
)

// builtinKinds maps each builtin name to its kind. Names are case-sensitive.
var builtinKinds = map[string]Kind{
	"echo": KindEcho,
	"exit": KindExit,
	"type": KindType,
	"cd":   KindCd,
	"pwd":  KindPwd,
}

// BuiltinNames lists the builtin names in a stable order.
var BuiltinNames = []string{"cd", "echo", "exit", "pwd", "type"}

// BuiltinKind returns the builtin kind for name, ignoring surrounding whitespace.
func BuiltinKind(name string) (Kind, bool) {
	kind, ok := builtinKinds[strings.TrimSpace(name)]
	return kind, ok
}

// IsBuiltin reports whether name is one of the shell builtins.
func IsBuiltin(name string) bool {
	_, ok := BuiltinKind(name)
	return ok
}

// IsBuiltin reports whether k is one of the builtin kinds.
func (k Kind) IsBuiltin() bool {
	switch k {
	case KindEcho, KindExit, KindType, KindCd, KindPwd:
		return true
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case KindEcho:
		return "echo"
	case KindExit:
		return "exit"
	case KindType:
		return "type"
	case KindCd:
		return "cd"
	case KindPwd:
		return "pwd"
	case KindExecutable:
		return "executable"
	default:
		return "unresolved"
	}
}

/*
Command is one classified input line. Args[0] is always the command name as
typed; Path is only set for KindExecutable.
*/
type Command struct {
	Kind Kind
	Args []string
	Name string // Trimmed command name, used for display and error identity
	Path string // Absolute path of the resolved executable
}

// ExitStatus returns the status an exit command asks for, reduced to the
// 0-255 range a process can report. A missing or non-numeric argument means 0.
func (c Command) ExitStatus() int {
	if c.Kind != KindExit || len(c.Args) < 2 {
		return 0
	}
	code, err := strconv.Atoi(strings.TrimSpace(c.Args[1]))
	if err != nil {
		return 0
	}
	return code & 0xff
}
