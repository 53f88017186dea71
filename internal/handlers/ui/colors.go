package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor   = color.New(color.FgCyan).SprintFunc()
	ErrorColor  = color.New(color.FgRed).SprintFunc()
	DetailColor = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like descriptions
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Builtin Specific Colors
var (
	BuiltinNameColor = color.New(color.FgYellow).SprintFunc()
)

// SetColorEnabled turns colored output on or off for the whole process.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}
