package output

import "errors"

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitUserError   = 1 // bad arguments, unknown command, invalid project
	ExitSystemError = 2 // filesystem failures
	ExitConflict    = 3 // destination conflicts with what would be written
)

// ExitError carries the exit code for an error returned from a command.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error joins the message and the cause so the failing path in the cause
// reaches the user.
func (e *ExitError) Error() string {
	switch {
	case e.Cause == nil:
		return e.Message
	case e.Message == "":
		return e.Cause.Error()
	default:
		return e.Message + ": " + e.Cause.Error()
	}
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError returns an error that exits with ExitUserError.
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewSystemError returns an error that exits with ExitSystemError.
func NewSystemError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// NewConflictError returns an error that exits with ExitConflict.
func NewConflictError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitConflict, Message: message, Cause: cause}
}

// GetExitCode maps err to a process exit code. Errors that are not
// ExitErrors exit with ExitUserError.
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
