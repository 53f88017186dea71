package tokenizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/shellerror"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
)

// LineTokenizer splits input lines into arguments, honoring single quotes,
// double quotes and backslash escapes.
type LineTokenizer struct{}

// NewLineTokenizer creates a new LineTokenizer.
func NewLineTokenizer() ports.Tokenizer {
	return &LineTokenizer{}
}

// ReadLine reads exactly one line from r and strips its terminator.
// A final line without a trailing newline is still returned; reading nothing
// at all yields shellerror.ErrUnexpectedEOF.
func (t *LineTokenizer) ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return trimLineTerminator(line), nil
			}
			return "", shellerror.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("%w: %v", shellerror.ErrUnexpectedEOF, err)
	}
	return trimLineTerminator(line), nil
}

// Tokenize breaks a line down into its arguments.
// It never returns a partial token list: an unterminated quote fails the whole line.
func (t *LineTokenizer) Tokenize(line string) ([]string, error) {
	line = trimLineTerminator(line)

	tokens := []string{}
	var current strings.Builder
	state := stateOutside
	escaped := false

	for _, r := range line {
		switch state {
		case stateOutside:
			state, escaped, tokens = stepOutside(r, &current, escaped, tokens)
		case stateSingleQuote:
			state = stepSingleQuote(r, &current)
		case stateDoubleQuote:
			state, escaped = stepDoubleQuote(r, &current, escaped)
		}
	}

	if state != stateOutside {
		return nil, shellerror.ErrUnterminatedQuote
	}
	if escaped {
		// Nothing left to escape; keep the backslash itself.
		current.WriteRune('\\')
	}

	return flushToken(&current, tokens), nil
}

func trimLineTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
