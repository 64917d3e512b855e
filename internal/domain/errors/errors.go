// Package errors defines application errors that carry an HTTP status and a
// machine-readable code for the worker's trigger endpoints.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Human readable error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the human readable error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code, so WithDetails copies
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrUnknownJob = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_JOB",
		"unknown job",
		"",
	)

	ErrJobAlreadyRunning = NewBaseError(
		http.StatusConflict,
		"JOB_ALREADY_RUNNING",
		"job is already running",
		"",
	)

	ErrJobFailed = NewBaseError(
		http.StatusInternalServerError,
		"JOB_FAILED",
		"job failed",
		"",
	)

	ErrInvalidTrigger = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRIGGER",
		"invalid trigger payload",
		"",
	)

	ErrUnauthorizedTrigger = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED_TRIGGER",
		"trigger is not authenticated",
		"",
	)
)
