package core

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode string

const (
	// Dispatch errors
	ErrorCodeUnknownTool      ErrorCode = "UNKNOWN_TOOL"
	ErrorCodeInvalidArguments ErrorCode = "INVALID_ARGUMENTS"

	// Document errors
	ErrorCodeInvalidDocument ErrorCode = "INVALID_DOCUMENT"

	// Gateway errors
	ErrorCodeTransportFailed ErrorCode = "TRANSPORT_FAILED"
	ErrorCodeAPIError        ErrorCode = "API_ERROR"
	ErrorCodeInvalidResponse ErrorCode = "INVALID_RESPONSE"

	// Configuration errors
	ErrorCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Runtime errors
	ErrorCodePanicRecovered ErrorCode = "PANIC_RECOVERED"
)

// Error represents a structured error with code and metadata
type Error struct {
	Err      error          `json:"error"`
	Code     ErrorCode      `json:"code"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewError creates a new structured error for domain boundaries
func NewError(err error, code ErrorCode, metadata map[string]any) *Error {
	return &Error{
		Err:      err,
		Code:     code,
		Metadata: metadata,
	}
}

// Errorf is a shorthand for NewError(fmt.Errorf(...), code, nil)
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return NewError(fmt.Errorf(format, args...), code, nil)
}

// Error implements the error interface
func (e *Error) Error() string {
	if len(e.Metadata) > 0 {
		return fmt.Sprintf("[%s] %v (metadata: %v)", e.Code, e.Err, e.Metadata)
	}
	return fmt.Sprintf("[%s] %v", e.Code, e.Err)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var coreErr *Error
	if errors.As(err, &coreErr) {
		return coreErr.Code
	}
	return ""
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	return errors.Is(err, &Error{Code: code})
}
