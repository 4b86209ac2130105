package errors

import (
	"fmt"
)

// Common error types
var (
	// Configuration errors
	ErrMissingAPIKey = New("API key is required")
	ErrInvalidAPIKey = New("invalid API key format")
	ErrInvalidConfig = New("invalid configuration")

	// Job set errors, rejected before any job is dispatched
	ErrEmptyJobSet       = New("job set is empty")
	ErrEmptySourcePath   = New("source path is empty")
	ErrDuplicateSource   = New("duplicate source path")
	ErrDuplicateIdentity = New("duplicate identity")

	// Aggregation errors indicate a driver defect
	ErrUnknownOutcome   = New("outcome for unknown identity")
	ErrDuplicateOutcome = New("duplicate outcome")
	ErrMissingOutcome   = New("missing outcome")

	// Transcription errors
	ErrUnknownCause     = New("transcription failed for an unknown reason")
	ErrTranscriberPanic = New("transcriber panicked")
	ErrProviderNotFound = New("provider not found")
	ErrFileNotFound     = New("file not found")

	// Output errors
	ErrFileWriteFailed = New("file write failed")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return Newf("%s is required", field)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return Newf("%s is invalid: %s", field, reason)
}

// OutOfRange returns an error for values outside acceptable range
func OutOfRange(field string, min, max interface{}) error {
	return Newf("%s out of range (must be between %v and %v)", field, min, max)
}
