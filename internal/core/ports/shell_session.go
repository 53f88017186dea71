package ports

import "github.com/AntonioJCosta/tinysh/internal/core/domain/command"

// ShellSession defines the contract for processing one line of input end to end.
type ShellSession interface {
	// Execute tokenizes, classifies and runs line. The classified command is
	// returned even when running it fails, so callers can react to KindExit.
	Execute(line string) (command.Command, error)
}
