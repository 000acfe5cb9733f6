package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeConfig, Message: "invalid log level: 9"},
			expected: "[CONFIG_ERROR] invalid log level: 9",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeIO, "could not open output file", errors.New("permission denied")),
			expected: "[IO_ERROR] could not open output file: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeFatal, Message: "test error"}
	err2 := &Error{Code: ErrCodeFatal, Message: "another error"}
	err3 := &Error{Code: ErrCodeArgument, Message: "argument error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *Error
		code ErrorCode
	}{
		{"config", NewConfigError("config", cause), ErrCodeConfig},
		{"argument", NewArgumentError("argument", cause), ErrCodeArgument},
		{"usage", NewUsageError("usage"), ErrCodeUsage},
		{"fatal", NewFatalError("fatal", cause), ErrCodeFatal},
		{"io", NewIOError("io", cause), ErrCodeIO},
		{"parse", NewParseError("parse", cause), ErrCodeParse},
		{"validation", NewValidationError("validation", cause), ErrCodeValidation},
		{"internal", NewInternalError("internal", cause), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Expected code %v, got %v", tt.code, tt.err.Code)
			}
			if tt.err.Message != tt.name {
				t.Errorf("Expected message %q, got %q", tt.name, tt.err.Message)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("while dispatching: %w", NewFatalError("die", nil))

	if !HasCode(err, ErrCodeFatal) {
		t.Errorf("Expected wrapped error to carry %s", ErrCodeFatal)
	}
	if HasCode(err, ErrCodeUsage) {
		t.Errorf("Expected wrapped error not to carry %s", ErrCodeUsage)
	}
	if HasCode(errors.New("plain"), ErrCodeFatal) {
		t.Errorf("Expected plain error not to carry a code")
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Errorf("ExitCode(nil) = %d, want 0", got)
	}
	if got := ExitCode(NewUsageError("help")); got != 1 {
		t.Errorf("ExitCode(usage) = %d, want 1", got)
	}
	if got := ExitCode(errors.New("plain")); got != 1 {
		t.Errorf("ExitCode(plain) = %d, want 1", got)
	}
}
