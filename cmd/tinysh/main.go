package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/tinysh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/tinysh/internal/adapters/osenv"
	"github.com/AntonioJCosta/tinysh/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/tinysh/internal/core/ports"
	"github.com/AntonioJCosta/tinysh/internal/core/services/builtins"
	"github.com/AntonioJCosta/tinysh/internal/core/services/classification"
	"github.com/AntonioJCosta/tinysh/internal/core/services/dispatch"
	"github.com/AntonioJCosta/tinysh/internal/core/services/session"
	"github.com/AntonioJCosta/tinysh/internal/handlers/cli"
	"github.com/AntonioJCosta/tinysh/internal/handlers/ui"
	"github.com/AntonioJCosta/tinysh/internal/logging"
	"github.com/AntonioJCosta/tinysh/internal/repositories/searchpath"
	"github.com/AntonioJCosta/tinysh/internal/repositories/shellconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	env := osenv.NewOSEnvironment()
	resolver := searchpath.NewPathResolver(env)
	lineTokenizer := tokenizer.NewLineTokenizer()

	// Without a home directory there is no default config file.
	home, err := env.HomeDir()
	defaultConfigPath := ""
	if err == nil {
		defaultConfigPath = shellconfig.DefaultPath(home)
	}

	openConfig := func(path string) ports.ShellConfigAccessor {
		return shellconfig.NewShellConfigAccessor(path, home)
	}

	newSession := func(logger *logging.Logger) ports.ShellSession {
		builtinHandlers := builtins.NewService(logger.Stdout, env, resolver)
		executor := oscommand.NewOSCommandExecutor(logger.Stdout, logger.Stderr)
		return session.NewService(
			lineTokenizer,
			classification.NewService(resolver),
			dispatch.NewService(builtinHandlers, executor),
			logger,
		)
	}

	rootCmd := cli.NewRootCommand(Version, defaultConfigPath, openConfig, lineTokenizer, newSession)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
