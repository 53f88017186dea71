package tokenizer

import (
	"strings"
	"unicode"
)

type parseState int

const (
	stateOutside parseState = iota
	stateSingleQuote
	stateDoubleQuote
)

/*
flushToken appends the pending token, if any, and resets the builder.

Only non-empty tokens are emitted. This is what makes empty quoted spans
disappear: `''` on its own leaves nothing behind, while `a''` and `''a` both
collapse to "a". Adjacent spans concatenate because nothing flushes the
builder until unquoted whitespace or the end of the line.
*/
func flushToken(current *strings.Builder, tokens []string) []string {
	if current.Len() == 0 {
		return tokens
	}
	tokens = append(tokens, current.String())
	current.Reset()
	return tokens
}

// stepOutside handles one rune outside of any quoted span.
func stepOutside(r rune, current *strings.Builder, escaped bool, tokens []string) (parseState, bool, []string) {
	if escaped {
		current.WriteRune(r)
		return stateOutside, false, tokens
	}

	switch {
	case r == '\\':
		return stateOutside, true, tokens
	case r == '\'':
		return stateSingleQuote, false, tokens
	case r == '"':
		return stateDoubleQuote, false, tokens
	case unicode.IsSpace(r):
		return stateOutside, false, flushToken(current, tokens)
	default:
		current.WriteRune(r)
		return stateOutside, false, tokens
	}
}

// stepSingleQuote handles one rune inside '...'. Everything but the closing quote is literal.
func stepSingleQuote(r rune, current *strings.Builder) parseState {
	if r == '\'' {
		return stateOutside
	}
	current.WriteRune(r)
	return stateSingleQuote
}

// stepDoubleQuote handles one rune inside "...". A backslash only escapes
// characters that are special inside double quotes.
func stepDoubleQuote(r rune, current *strings.Builder, escaped bool) (parseState, bool) {
	if escaped {
		if !escapableInDoubleQuotes(r) {
			current.WriteRune('\\')
		}
		current.WriteRune(r)
		return stateDoubleQuote, false
	}

	switch r {
	case '\\':
		return stateDoubleQuote, true
	case '"':
		return stateOutside, false
	default:
		current.WriteRune(r)
		return stateDoubleQuote, false
	}
}

func escapableInDoubleQuotes(r rune) bool {
	switch r {
	case '"', '\\', '$', '`':
		return true
	}
	return false
}
