package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
)

type (
	Color     func() PrintFunc
	PrintFunc func(io.Writer, string, ...any)
)

func Default() PrintFunc {
	return func(w io.Writer, s string, args ...any) {
		_, _ = fmt.Fprintf(w, s, args...)
	}
}

func Red() PrintFunc {
	return color.New(envColor("TINYSH_COLOR_RED", color.FgRed)).FprintfFunc()
}

func Yellow() PrintFunc {
	return color.New(envColor("TINYSH_COLOR_YELLOW", color.FgYellow)).FprintfFunc()
}

func Cyan() PrintFunc {
	return color.New(envColor("TINYSH_COLOR_CYAN", color.FgCyan)).FprintfFunc()
}

func Magenta() PrintFunc {
	return color.New(envColor("TINYSH_COLOR_MAGENTA", color.FgMagenta)).FprintfFunc()
}

// envColor lets users override a color attribute with its numeric code.
func envColor(env string, defaultColor color.Attribute) color.Attribute {
	override, err := strconv.Atoi(os.Getenv(env))
	if err == nil {
		return color.Attribute(override)
	}
	return defaultColor
}

// Logger prints to the shell's stdout or stderr, with optional color.
type Logger struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Verbose bool
	Color   bool
}

// Outf prints a line to Stdout.
func (l *Logger) Outf(c Color, s string, args ...any) {
	l.FOutf(l.Stdout, c, s+"\n", args...)
}

// FOutf prints to the given writer without appending a newline.
func (l *Logger) FOutf(w io.Writer, c Color, s string, args ...any) {
	if len(args) == 0 {
		s, args = "%s", []any{s}
	}
	if !l.Color {
		c = Default
	}
	print := c()
	print(w, s, args...)
}

// Errf prints a line to Stderr.
func (l *Logger) Errf(c Color, s string, args ...any) {
	l.FOutf(l.Stderr, c, s+"\n", args...)
}

// VerboseErrf prints a line to Stderr if verbose mode is enabled.
func (l *Logger) VerboseErrf(c Color, s string, args ...any) {
	if l.Verbose {
		l.Errf(c, s, args...)
	}
}
