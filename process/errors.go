package process

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	osexec "os/exec"
	"strings"

	"github.com/jmgilman/go/resfs/errors"
)

// RunError represents a failed program run.
// It includes the exit code, the command line, and any captured output.
type RunError struct {
	// Command is the program followed by its arguments.
	Command []string

	// ExitCode is the program's exit code, or -1 if it never ran or was killed.
	ExitCode int

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RunError) Error() string {
	cmd := strings.Join(e.Command, " ")
	if e.Err != nil {
		return fmt.Sprintf("command %q failed with exit code %d: %v", cmd, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %q failed with exit code %d", cmd, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *RunError) Unwrap() error {
	return e.Err
}

// Code classifies the failure: CodeTimeout when the context expired,
// CodeNotFound when the program could not be located, CodeExecutionFailed
// otherwise.
func (e *RunError) Code() errors.ErrorCode {
	switch {
	case stderrors.Is(e.Err, context.DeadlineExceeded):
		return errors.CodeTimeout
	case stderrors.Is(e.Err, osexec.ErrNotFound), stderrors.Is(e.Err, fs.ErrNotExist):
		return errors.CodeNotFound
	default:
		return errors.CodeExecutionFailed
	}
}

// AsPlatformError converts err to a PlatformError. RunErrors are classified
// with Code and annotated with the command line and exit code; other errors
// are wrapped as CodeExecutionFailed.
func AsPlatformError(err error) errors.PlatformError {
	if err == nil {
		return nil
	}

	var runErr *RunError
	if !stderrors.As(err, &runErr) {
		return errors.Wrap(err, errors.CodeExecutionFailed, "command failed")
	}
	return errors.WrapWithContext(err, runErr.Code(), "command failed", map[string]interface{}{
		"command":   strings.Join(runErr.Command, " "),
		"exit_code": runErr.ExitCode,
	})
}
