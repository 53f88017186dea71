/*
Package shellerror defines the closed set of errors a line can produce on its
way from raw input to a finished command.
*/
package shellerror

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
)

// ErrNoOp indicates an empty or whitespace-only line. It is never shown to the user.
var ErrNoOp = errors.New("no operation")

// ErrUnexpectedEOF indicates the input closed before a line could be read.
var ErrUnexpectedEOF = errors.New("error reading input: unexpected EOF")

// ErrUnterminatedQuote indicates a line ended while a quoted span was still open.
var ErrUnterminatedQuote = errors.New("error: unterminated quote")

// CommandNotFoundError is returned when a name is neither a builtin nor an
// executable on the search path.
type CommandNotFoundError struct {
	Name string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("%s: command not found", e.Name)
}

// CommandError is returned when a resolved command fails while running.
type CommandError struct {
	Kind   command.Kind
	Name   string
	Msg    string
	Status *int  // Exit code or errno; nil when the OS reported none (e.g. signal death)
	Err    error // Underlying OS error, if any
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Msg)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// StatusCode returns the numeric status and whether one was recorded.
func (e *CommandError) StatusCode() (int, bool) {
	if e.Status == nil {
		return 0, false
	}
	return *e.Status, true
}

// Status is a small helper for filling CommandError.Status.
func Status(code int) *int {
	return &code
}

// Errno extracts the OS error number from err, if it carries one.
func Errno(err error) *int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return Status(int(errno))
	}
	return nil
}
