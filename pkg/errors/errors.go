package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed CLI error carrying the process exit code the
// command should terminate with.
type Error struct {
	Code     string
	ExitCode int
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, exitCode int, message string) *Error {
	return &Error{Code: code, ExitCode: exitCode, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, exitCode int, message string) *Error {
	return &Error{Code: code, ExitCode: exitCode, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrInvalidDate        = New("INVALID_DATE", 1, "not a valid time/date")
	ErrNotFound           = New("NOT_FOUND", 1, "resource not found")
	ErrServiceUnavailable = New("SERVICE_UNAVAILABLE", 1, "schedule service unavailable")
	ErrNoUpcomingModule   = New("NO_UPCOMING_MODULE", 1, "no upcoming module found")
	ErrNoOngoingModule    = New("NO_ONGOING_MODULE", 1, "no ongoing modules")
	ErrUsage              = New("USAGE", 1, "invalid usage")
	ErrInternal           = New("INTERNAL_ERROR", 1, "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.ExitCode, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Is reports whether err matches the given sentinel by code.
func Is(err error, sentinel *Error) bool {
	e := FromError(err)
	return e != nil && sentinel != nil && e.Code == sentinel.Code
}

// ExitCodeOf returns the exit code a command should terminate with.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	return FromError(err).ExitCode
}
