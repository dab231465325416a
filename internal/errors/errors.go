// Package errors defines the application error type shared by services and
// the HTTP layer.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound means nothing starts at the requested offset.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeUnavailable indicates a dependency (remote API, cache) could not be reached.
	ErrCodeUnavailable ErrorCode = "unavailable"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a deadline expired.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the caller went away.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError carries a code for the HTTP layer, a message safe to show, and
// the cause for logs. It works with errors.Is and errors.As.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error  // Optional
	Field   string // Optional, the input that failed validation
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

func newf(code ErrorCode, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return newf(ErrCodeNotFound, format, args...)
}

// Validationf creates a new Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return newf(ErrCodeValidation, format, args...)
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Unavailablef creates a new Unavailable error with formatted message.
func Unavailablef(format string, args ...any) *AppError {
	return newf(ErrCodeUnavailable, format, args...)
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapContext is Wrap with context errors classified: cancellation becomes
// ErrCodeCanceled, an expired deadline ErrCodeTimeout, anything else fallback.
func WrapContext(err error, fallback ErrorCode, message string) *AppError {
	switch {
	case errors.Is(err, context.Canceled):
		return Wrap(err, ErrCodeCanceled, message)
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrCodeTimeout, message)
	default:
		return Wrap(err, fallback, message)
	}
}

func isCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsUnavailable checks if an error is an Unavailable error.
func IsUnavailable(err error) bool {
	return isCode(err, ErrCodeUnavailable)
}

// IsTimeout checks if an error is a Timeout error.
func IsTimeout(err error) bool {
	return isCode(err, ErrCodeTimeout)
}

// IsCanceled checks if an error is a Canceled error.
func IsCanceled(err error) bool {
	return isCode(err, ErrCodeCanceled)
}

// GetCode returns the code of the outermost AppError in err's chain, or ""
// when there is none.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field of the outermost AppError in err's chain.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
