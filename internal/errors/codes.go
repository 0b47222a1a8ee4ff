package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type for core operations.
type ErrorCode string

const (
	// ErrCodeInvalidTimezone indicates a zone identifier that fails resolution.
	ErrCodeInvalidTimezone ErrorCode = "INVALID_TIMEZONE"
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeNotFound indicates no record exists for the requested user.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeStorageFailure indicates an unrecoverable storage I/O error.
	ErrCodeStorageFailure ErrorCode = "STORAGE_FAILURE"
)

// CoreError is a structured error carrying a stable code for the caller.
type CoreError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *CoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *CoreError) Unwrap() error {
	return e.Cause
}

// InvalidTimezone creates an invalid-timezone error.
func InvalidTimezone(tz string, cause error) *CoreError {
	return &CoreError{
		Code:    ErrCodeInvalidTimezone,
		Message: fmt.Sprintf("timezone %q is not a valid IANA zone identifier", tz),
		Cause:   cause,
	}
}

// InvalidArgument creates an invalid-argument error.
func InvalidArgument(msg string) *CoreError {
	return &CoreError{Code: ErrCodeInvalidArgument, Message: msg}
}

// NotFound creates a not-found error.
func NotFound(msg string) *CoreError {
	return &CoreError{Code: ErrCodeNotFound, Message: msg}
}

// StorageFailure wraps an unrecoverable storage error.
func StorageFailure(msg string, cause error) *CoreError {
	return &CoreError{Code: ErrCodeStorageFailure, Message: msg, Cause: cause}
}

// CodeOf extracts the error code, or empty string for non-core errors.
func CodeOf(err error) ErrorCode {
	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Code
	}
	return ""
}
