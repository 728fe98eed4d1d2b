// Package errors provides domain-specific error types for keen-console.
//
// Errors carry a code so that callers (the API layer in particular) can map
// them to responses without matching on message text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a console configuration error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeParse indicates app configuration text that is not a JSON object.
	ErrCodeParse ErrorCode = "PARSE_ERROR"

	// ErrCodeAddress indicates a path that does not resolve in the document.
	ErrCodeAddress ErrorCode = "ADDRESS_ERROR"

	// ErrCodeType indicates an array operation on a node that is not an array.
	ErrCodeType ErrorCode = "TYPE_ERROR"

	// ErrCodeRange indicates an array index outside the array bounds.
	ErrCodeRange ErrorCode = "RANGE_ERROR"

	// ErrCodeStore indicates a failure loading or saving app configuration.
	ErrCodeStore ErrorCode = "STORE_ERROR"

	// ErrCodeRemote indicates an error reported by, or while talking to, the DNS/DHCP server.
	ErrCodeRemote ErrorCode = "REMOTE_ERROR"

	// ErrCodeSession indicates an unknown, expired or unusable editing session.
	ErrCodeSession ErrorCode = "SESSION_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or
// ErrCodeInternal if there is none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err's chain contains an *Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	return stderrors.Is(err, &Error{Code: code})
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewParseError creates a new app configuration parse error.
func NewParseError(message string, cause error) *Error {
	return Wrap(ErrCodeParse, message, cause)
}

// NewStoreError creates a new store error.
func NewStoreError(message string, cause error) *Error {
	return Wrap(ErrCodeStore, message, cause)
}

// NewRemoteError creates a new remote server error.
func NewRemoteError(message string, cause error) *Error {
	return Wrap(ErrCodeRemote, message, cause)
}

// NewSessionError creates a new session error.
func NewSessionError(message string, cause error) *Error {
	return Wrap(ErrCodeSession, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
