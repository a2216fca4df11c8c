// Package exitcodes defines the exit codes used by flakerun.
package exitcodes

import (
	"errors"
	"fmt"
)

// Exit code constants.
//
// * Success (0): the campaign completed; failures are only visible in the report
// * TestFailure (1): the campaign completed with failures and --strict was set
// * RuntimeErr (2): the campaign could not run or its report could not be written
const (
	Success     = 0
	TestFailure = 1
	RuntimeErr  = 2
)

// Error carries the exit code the process should terminate with
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FromError maps an error returned by a command to an exit code.
// Errors that carry no code are runtime errors.
func FromError(err error) int {
	if err == nil {
		return Success
	}
	var exitErr *Error
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return RuntimeErr
}
