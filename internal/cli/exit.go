package cli

import (
	"fmt"

	"github.com/jmgilman/go/resfs/errors"
)

// Exit codes returned by the resfs binary.
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitInvalidInput = 2
	ExitNotFound     = 3
)

// ExitError carries the exit code of a program started by "resfs run".
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("program exited with code %d", e.Code)
}

// ExitCodeForError maps err to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}

	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeInvalidConfig:
		return ExitInvalidInput
	case errors.CodeNotFound:
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
