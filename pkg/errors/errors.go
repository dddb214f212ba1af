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
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Materialization errors
	ErrSourceMissing  ErrorCode = "SOURCE_MISSING"
	ErrTargetConflict ErrorCode = "TARGET_CONFLICT"
	ErrSymlinkRemove  ErrorCode = "SYMLINK_REMOVE"
	ErrDirCreate      ErrorCode = "DIR_CREATE"
	ErrWalk           ErrorCode = "WALK"
	ErrFileCopy       ErrorCode = "FILE_COPY"
)

// HookError represents a structured error with code and details
type HookError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HookError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HookError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HookError) Is(target error) bool {
	var targetErr *HookError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HookError with the given code and message
func New(code ErrorCode, message string) *HookError {
	return &HookError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HookError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HookError {
	return &HookError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HookError
func Wrap(err error, code ErrorCode, message string) *HookError {
	if err == nil {
		return nil
	}
	return &HookError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HookError {
	if err == nil {
		return nil
	}
	return &HookError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HookError) WithDetail(key string, value interface{}) *HookError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var hookErr *HookError
	if errors.As(err, &hookErr) {
		return hookErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HookError
func GetErrorCode(err error) ErrorCode {
	var hookErr *HookError
	if errors.As(err, &hookErr) {
		return hookErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HookError
func GetErrorDetails(err error) map[string]interface{} {
	var hookErr *HookError
	if errors.As(err, &hookErr) {
		return hookErr.Details
	}
	return nil
}
