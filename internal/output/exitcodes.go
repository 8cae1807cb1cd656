// Package output provides structured output and error handling for the issuepage CLI.
package output

import "errors"

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitUserError   = 1 // missing issues file, malformed record, bad flag or config
	ExitSystemError = 2 // git failure, unreadable input, page write failure
)

// ExitError pairs a user-facing message with the exit code it should produce.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError reports a problem the user can fix (exit code 1).
func NewUserError(message string) *ExitError {
	return NewUserErrorWithCause(message, nil)
}

// NewUserErrorWithCause is NewUserError keeping cause for errors.Is/As.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message, Cause: cause}
}

// NewSystemError reports an environment or I/O failure (exit code 2).
func NewSystemError(message string) *ExitError {
	return NewSystemErrorWithCause(message, nil)
}

// NewSystemErrorWithCause is NewSystemError keeping cause for errors.Is/As.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// GetExitCode maps err to a process exit code. Errors without an ExitError
// in their chain come from cobra flag and argument validation and count as
// user errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}
