package cli

import "fmt"

// ExitCode is the process exit status reported by [Execute].
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError covers I/O failures and anything unclassified.
	ExitGeneralError ExitCode = 1

	// ExitUsage indicates bad flags or arguments; the input was never read.
	ExitUsage ExitCode = 2
)

// CLIError is an error that carries an exit code.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
