package cli

import (
	"errors"
	"fmt"
)

// Exit codes returned by Execute.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitUnsupported = 2
)

// ErrUnsupported is returned by expand --strict when a directive could not
// be expanded.
var ErrUnsupported = errors.New("template contains unsupported directives")

// ExitCodeError carries a specific process exit code.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// exitCode maps a command error onto a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ec *ExitCodeError
	if errors.As(err, &ec) {
		return ec.Code
	}
	return ExitError
}
