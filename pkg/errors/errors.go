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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Page errors
	ErrPageNotFound ErrorCode = "PAGE_NOT_FOUND"

	// Cache errors
	ErrCacheAccess ErrorCode = "CACHE_ACCESS"
	ErrCacheStale  ErrorCode = "CACHE_STALE"

	// Network and filesystem errors
	ErrNetwork    ErrorCode = "NETWORK"
	ErrHTTPStatus ErrorCode = "HTTP_STATUS"
	ErrExtraction ErrorCode = "EXTRACTION"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// TldrError represents a structured error with code and details
type TldrError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TldrError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TldrError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TldrError) Is(target error) bool {
	var targetErr *TldrError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TldrError with the given code and message
func New(code ErrorCode, message string) *TldrError {
	return &TldrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TldrError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TldrError {
	return &TldrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TldrError
func Wrap(err error, code ErrorCode, message string) *TldrError {
	if err == nil {
		return nil
	}
	return &TldrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TldrError {
	if err == nil {
		return nil
	}
	return &TldrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TldrError) WithDetail(key string, value interface{}) *TldrError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tldrErr *TldrError
	if errors.As(err, &tldrErr) {
		return tldrErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TldrError
func GetErrorCode(err error) ErrorCode {
	var tldrErr *TldrError
	if errors.As(err, &tldrErr) {
		return tldrErr.Code
	}
	return ErrUnknown
}
