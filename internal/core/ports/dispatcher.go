package ports

import "github.com/AntonioJCosta/tinysh/internal/core/domain/command"

// Dispatcher runs a classified command with the matching handler.
type Dispatcher interface {
	Run(cmd command.Command) error
}
