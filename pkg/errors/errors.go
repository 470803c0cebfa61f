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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Host seam errors
	ErrCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrCommandExists   ErrorCode = "COMMAND_EXISTS"

	// Fixture errors
	ErrPatchState ErrorCode = "PATCH_STATE"
	ErrScratchDir ErrorCode = "SCRATCH_DIR"
	ErrDecode     ErrorCode = "DECODE"
)

// FixtureError represents a structured error with code and details
type FixtureError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FixtureError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FixtureError) Unwrap() error {
	return e.Wrapped
}

// Is matches any FixtureError carrying the same code
func (e *FixtureError) Is(target error) bool {
	var targetErr *FixtureError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FixtureError with the given code and message
func New(code ErrorCode, message string) *FixtureError {
	return &FixtureError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FixtureError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FixtureError {
	return &FixtureError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FixtureError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &FixtureError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &FixtureError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FixtureError) WithDetail(key string, value interface{}) *FixtureError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fixtureErr *FixtureError
	if errors.As(err, &fixtureErr) {
		return fixtureErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FixtureError
func GetErrorCode(err error) ErrorCode {
	var fixtureErr *FixtureError
	if errors.As(err, &fixtureErr) {
		return fixtureErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FixtureError
func GetErrorDetails(err error) map[string]interface{} {
	var fixtureErr *FixtureError
	if errors.As(err, &fixtureErr) {
		return fixtureErr.Details
	}
	return nil
}
