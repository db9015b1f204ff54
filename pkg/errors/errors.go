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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Registry errors
	ErrActionAttributeMissing ErrorCode = "ACTION_ATTRIBUTE_MISSING"
	ErrActionDuplicate        ErrorCode = "ACTION_DUPLICATE"
	ErrActionNotFound         ErrorCode = "ACTION_NOT_FOUND"
	ErrActionHandlerMissing   ErrorCode = "ACTION_HANDLER_MISSING"
	ErrActionConfigInvalid    ErrorCode = "ACTION_CONFIG_INVALID"
	ErrRegistryFrozen         ErrorCode = "REGISTRY_FROZEN"

	// Page element errors
	ErrElementNotFound  ErrorCode = "ELEMENT_NOT_FOUND"
	ErrElementUndefined ErrorCode = "ELEMENT_UNDEFINED"
	ErrSelectorInvalid  ErrorCode = "SELECTOR_INVALID"

	// Output errors
	ErrOutputFormat ErrorCode = "OUTPUT_FORMAT"
)

// Error is the base error type for catalogpromo
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target carries the same error code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
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
	var promoErr *Error
	if errors.As(err, &promoErr) {
		return promoErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code of an error, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var promoErr *Error
	if errors.As(err, &promoErr) {
		return promoErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of an error, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var promoErr *Error
	if errors.As(err, &promoErr) {
		return promoErr.Details
	}
	return nil
}
