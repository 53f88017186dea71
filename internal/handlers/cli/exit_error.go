package cli

import "fmt"

// ExitError carries a nonzero status requested by the session, typically via
// the exit builtin. main turns it into the process exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
