// Package errors provides the coded error type shared by the jutil packages.
//
// Errors carry a code so callers can tell a configuration mistake from a
// fatal request or a failed file write without string matching. Nothing in
// the library terminates the process; the host turns any error it receives
// into an exit status with ExitCode.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the library.
type ErrorCode string

const (
	// ErrCodeConfig indicates an invalid logger setting, such as an
	// out-of-range threshold, or a broken configuration file.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeArgument indicates an unknown command-line token or a flag
	// that is missing its value.
	ErrCodeArgument ErrorCode = "ARGUMENT_ERROR"

	// ErrCodeUsage indicates the host asked for usage text and should stop.
	ErrCodeUsage ErrorCode = "USAGE"

	// ErrCodeFatal indicates an explicit fatal log call.
	ErrCodeFatal ErrorCode = "FATAL"

	// ErrCodeIO indicates a failed filesystem operation.
	ErrCodeIO ErrorCode = "IO_ERROR"

	// ErrCodeParse indicates a value that could not be parsed as a number.
	ErrCodeParse ErrorCode = "PARSE_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewArgumentError creates a new command-line argument error.
func NewArgumentError(message string, cause error) *Error {
	return Wrap(ErrCodeArgument, message, cause)
}

// NewUsageError creates the error a help callback returns to stop the host.
func NewUsageError(message string) *Error {
	return New(ErrCodeUsage, message)
}

// NewFatalError creates a new fatal error.
func NewFatalError(message string, cause error) *Error {
	return Wrap(ErrCodeFatal, message, cause)
}

// NewIOError creates a new filesystem error.
func NewIOError(message string, cause error) *Error {
	return Wrap(ErrCodeIO, message, cause)
}

// NewParseError creates a new number parsing error.
func NewParseError(message string, cause error) *Error {
	return Wrap(ErrCodeParse, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}

// HasCode reports whether any error in err's chain carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return stderrors.Is(err, &Error{Code: code})
}

// ExitCode maps an error returned to the outermost boundary of a host
// program to its process exit status: 0 for nil, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
