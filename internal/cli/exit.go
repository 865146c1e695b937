package cli

import (
	"errors"

	"github.com/vk/drover/internal/executor"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ExitCodeFor maps a run error to the process exit status. A command failure
// propagates the failing subprocess's own exit code; every other failure is
// reported as 1.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var cmdErr *executor.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}

	return 1
}
