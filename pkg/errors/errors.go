// Package errors defines the coded errors returned by the rendering engine.
//
// Every failure carries an ErrorCode so callers and tests can branch on the
// kind of failure without matching message text. Details hold structured
// context such as the path of the offending node inside the tree.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Tree validation errors
	ErrUnsupportedNode   ErrorCode = "UNSUPPORTED_NODE"
	ErrInvalidConstraint ErrorCode = "INVALID_CONSTRAINT"
	ErrInvalidStyle      ErrorCode = "INVALID_STYLE"
	ErrCyclicTree        ErrorCode = "CYCLIC_TREE"

	// Output errors
	ErrInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrEncode        ErrorCode = "ENCODE"

	// Input document errors
	ErrDocumentParse ErrorCode = "DOCUMENT_PARSE"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// BoxError represents a structured error with code and details
type BoxError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BoxError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BoxError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BoxError) Is(target error) bool {
	var targetErr *BoxError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BoxError with the given code and message
func New(code ErrorCode, message string) *BoxError {
	return &BoxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BoxError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BoxError {
	return &BoxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BoxError. It returns nil for a nil err;
// callers returning `error` should check err first to avoid a typed nil.
func Wrap(err error, code ErrorCode, message string) *BoxError {
	if err == nil {
		return nil
	}
	return &BoxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BoxError {
	if err == nil {
		return nil
	}
	return &BoxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BoxError) WithDetail(key string, value interface{}) *BoxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *BoxError) WithDetails(details map[string]interface{}) *BoxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var boxErr *BoxError
	if errors.As(err, &boxErr) {
		return boxErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BoxError
func GetErrorCode(err error) ErrorCode {
	var boxErr *BoxError
	if errors.As(err, &boxErr) {
		return boxErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BoxError
func GetErrorDetails(err error) map[string]interface{} {
	var boxErr *BoxError
	if errors.As(err, &boxErr) {
		return boxErr.Details
	}
	return nil
}
