package cli

import (
	"bufio"
	"errors"
	"io"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
	"github.com/AntonioJCosta/tinysh/internal/core/domain/shellerror"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
	"github.com/AntonioJCosta/tinysh/internal/logging"
)

// loop is the read-execute cycle of an interactive session.
type loop struct {
	tokenizer  ports.Tokenizer
	session    ports.ShellSession
	logger     *logging.Logger
	prompt     string
	showPrompt bool
}

// run processes lines from in until the input ends or an exit command is
// seen, and returns the status the shell should exit with.
func (l *loop) run(in io.Reader) int {
	reader := bufio.NewReader(in)
	for {
		if l.showPrompt {
			l.logger.FOutf(l.logger.Stdout, logging.Magenta, l.prompt)
		}

		line, err := l.tokenizer.ReadLine(reader)
		if err != nil {
			if l.showPrompt {
				l.logger.Outf(logging.Default, "")
			}
			// Only the bare sentinel is a clean end of input; a wrapped one is a read failure.
			if err == shellerror.ErrUnexpectedEOF {
				return 0
			}
			l.logger.Errf(logging.Red, "%v", err)
			return 1
		}

		cmd, err := l.session.Execute(line)
		if err != nil && !errors.Is(err, shellerror.ErrNoOp) {
			l.logger.Errf(logging.Red, "%v", err)
		}
		if cmd.Kind == command.KindExit {
			return cmd.ExitStatus()
		}
	}
}
