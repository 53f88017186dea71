package oscommand

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
	"github.com/AntonioJCosta/tinysh/internal/core/domain/shellerror"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// OSCommandExecutor implements the CommandExecutor interface by spawning
// child processes and relaying their output to the shell's writers.
type OSCommandExecutor struct {
	stdout io.Writer
	stderr io.Writer
}

// NewOSCommandExecutor creates a new OSCommandExecutor relaying child output
// to stdout and stderr. It panics if either writer is nil.
func NewOSCommandExecutor(stdout, stderr io.Writer) ports.CommandExecutor {
	if stdout == nil || stderr == nil {
		panic("output writers cannot be nil")
	}
	return &OSCommandExecutor{stdout: stdout, stderr: stderr}
}

// Execute starts the program at path with argv[0] set to name and runs it to
// completion. Both output streams are drained before the child is reaped.
func (e *OSCommandExecutor) Execute(path, name string, args []string) (int, error) {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	cmd := exec.Command(path, rest...)
	cmd.Args[0] = name

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return -1, newCommandError(name, err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return -1, newCommandError(name, err)
	}

	if err := cmd.Start(); err != nil {
		return -1, newCommandError(name, err)
	}

	var g errgroup.Group
	g.Go(func() error { return relay(e.stdout, stdoutPipe) })
	g.Go(func() error { return relay(e.stderr, stderrPipe) })
	relayErr := g.Wait()

	waitErr := cmd.Wait()

	if relayErr != nil {
		return -1, &shellerror.CommandError{
			Kind:   command.KindExecutable,
			Name:   name,
			Msg:    fmt.Sprintf("failed to relay output: %v", relayErr),
			Status: shellerror.Errno(relayErr),
			Err:    relayErr,
		}
	}
	return exitStatus(name, cmd, waitErr)
}

// relay copies src into dst. If dst fails, src is still drained so the child
// never blocks on a full pipe, and the write error is reported afterwards.
func relay(dst io.Writer, src io.Reader) error {
	_, err := io.Copy(dst, src)
	if err == nil {
		return nil
	}
	_, _ = io.Copy(io.Discard, src)
	return err
}

// exitStatus turns the result of cmd.Wait into the executor's return values.
func exitStatus(name string, cmd *exec.Cmd, waitErr error) (int, error) {
	state := cmd.ProcessState
	if state == nil {
		return -1, newCommandError(name, waitErr)
	}

	if !state.Exited() {
		return -1, &shellerror.CommandError{
			Kind: command.KindExecutable,
			Name: name,
			Msg:  "process terminated by signal",
			Err:  waitErr,
		}
	}

	code := state.ExitCode()
	if code == 0 {
		return 0, nil
	}
	return code, &shellerror.CommandError{
		Kind:   command.KindExecutable,
		Name:   name,
		Msg:    fmt.Sprintf("process exited with code %d", code),
		Status: shellerror.Status(code),
		Err:    waitErr,
	}
}

func newCommandError(name string, err error) *shellerror.CommandError {
	msg := err.Error()
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		msg = pathErr.Err.Error()
	}
	return &shellerror.CommandError{
		Kind:   command.KindExecutable,
		Name:   name,
		Msg:    msg,
		Status: shellerror.Errno(err),
		Err:    err,
	}
}
