package ports

// CommandExecutor defines an interface for running an external program to completion.
type CommandExecutor interface {
	// Execute starts the program at path with argv[0] set to name and args[1:]
	// as its arguments, relays its output, and returns its exit code.
	Execute(path, name string, args []string) (int, error)
}
