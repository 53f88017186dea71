package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/AntonioJCosta/tinysh/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
	"github.com/AntonioJCosta/tinysh/internal/core/domain/shellerror"
	"github.com/AntonioJCosta/tinysh/internal/core/testutil"
	"github.com/AntonioJCosta/tinysh/internal/logging"
)

type errReader struct{}

func (errReader) Read(p []byte) (int, error) {
	return 0, errors.New("device gone")
}

// fakeSession classifies by the first word only and records every line.
func fakeSession() *testutil.MockShellSession {
	return &testutil.MockShellSession{
		ExecuteFunc: func(line string) (command.Command, error) {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				return command.Command{}, shellerror.ErrNoOp
			}
			if kind, ok := command.BuiltinKind(fields[0]); ok {
				return command.Command{Kind: kind, Args: fields, Name: fields[0]}, nil
			}
			return command.Command{}, &shellerror.CommandNotFoundError{Name: fields[0]}
		},
	}
}

func newTestLoop(session *testutil.MockShellSession, showPrompt bool) (*bytes.Buffer, *bytes.Buffer, *loop) {
	var stdout, stderr bytes.Buffer
	return &stdout, &stderr, &loop{
		tokenizer:  tokenizer.NewLineTokenizer(),
		session:    session,
		logger:     &logging.Logger{Stdout: &stdout, Stderr: &stderr},
		prompt:     "$ ",
		showPrompt: showPrompt,
	}
}

func TestLoop_Run(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantCode   int
		wantLines  []string
		wantStderr string
	}{
		{
			name:      "end of input exits cleanly",
			input:     "echo a\npwd\n",
			wantCode:  0,
			wantLines: []string{"echo a", "pwd"},
		},
		{
			name:      "final line without newline is run",
			input:     "echo a",
			wantCode:  0,
			wantLines: []string{"echo a"},
		},
		{
			name:      "exit stops reading",
			input:     "echo a\nexit\necho never\n",
			wantCode:  0,
			wantLines: []string{"echo a", "exit"},
		},
		{
			name:      "exit status is honored",
			input:     "exit 3\n",
			wantCode:  3,
			wantLines: []string{"exit 3"},
		},
		{
			name:      "non-numeric exit status means zero",
			input:     "exit soon\n",
			wantCode:  0,
			wantLines: []string{"exit soon"},
		},
		{
			name:      "blank lines are silent",
			input:     "\n   \n",
			wantCode:  0,
			wantLines: []string{"", "   "},
		},
		{
			name:       "errors are printed and the loop continues",
			input:      "nope\necho after\n",
			wantCode:   0,
			wantLines:  []string{"nope", "echo after"},
			wantStderr: "nope: command not found\n",
		},
		{
			name:     "empty input",
			input:    "",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := fakeSession()
			stdout, stderr, l := newTestLoop(session, false)

			if code := l.run(strings.NewReader(tt.input)); code != tt.wantCode {
				t.Errorf("run() = %d, want %d", code, tt.wantCode)
			}
			if strings.Join(session.ExecuteCalls, "|") != strings.Join(tt.wantLines, "|") {
				t.Errorf("executed lines = %q, want %q", session.ExecuteCalls, tt.wantLines)
			}
			if got := stderr.String(); got != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", got, tt.wantStderr)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want no prompt output", stdout.String())
			}
		})
	}
}

func TestLoop_Run_Prompt(t *testing.T) {
	_, _, l := newTestLoop(fakeSession(), true)
	stdout := l.logger.Stdout.(*bytes.Buffer)

	if code := l.run(strings.NewReader("echo a\npwd\n")); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if got, want := stdout.String(), "$ $ $ \n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestLoop_Run_ReadFailure(t *testing.T) {
	session := fakeSession()
	_, stderr, l := newTestLoop(session, false)

	if code := l.run(errReader{}); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unexpected EOF") || !strings.Contains(stderr.String(), "device gone") {
		t.Errorf("stderr = %q, want the read failure reported", stderr.String())
	}
	if len(session.ExecuteCalls) != 0 {
		t.Errorf("session called after a read failure: %v", session.ExecuteCalls)
	}
}

func TestLoop_Run_ExitAfterFailedDispatch(t *testing.T) {
	session := &testutil.MockShellSession{
		ExecuteFunc: func(line string) (command.Command, error) {
			return command.Command{Kind: command.KindExit, Args: []string{"exit", "4"}, Name: "exit"},
				errors.New("exit handler failed")
		},
	}
	_, stderr, l := newTestLoop(session, false)

	if code := l.run(strings.NewReader("exit 4\necho never\n")); code != 4 {
		t.Errorf("run() = %d, want 4", code)
	}
	if stderr.String() != "exit handler failed\n" {
		t.Errorf("stderr = %q, want the dispatch error", stderr.String())
	}
}
