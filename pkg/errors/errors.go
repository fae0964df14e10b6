// Package errors provides structured error types for gridboard.
//
// This package defines error codes and types that enable:
//   - Consistent rejection signals from the layout engine
//   - Machine-readable error codes for the HTTP API and CLI
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Engine rejections use two codes:
//   - UNKNOWN_WIDGET: the intent names an id that is not in the widget set
//   - INVALID_TARGET: the intent relates widgets in incompatible partitions
//
// Adapter codes follow the INVALID_*, *_NOT_FOUND and INTERNAL_* families.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownWidget, "unknown widget %q", id)
//	if errors.Is(err, errors.ErrCodeUnknownWidget) {
//	    // discard the intent and re-render
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Engine rejections
	ErrCodeUnknownWidget Code = "UNKNOWN_WIDGET"
	ErrCodeInvalidTarget Code = "INVALID_TARGET"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidCatalog Code = "INVALID_CATALOG"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidScript  Code = "INVALID_SCRIPT"

	// Resource not found errors
	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeSessionNotFound Code = "SESSION_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsRejection reports whether err is one of the layout engine's rejection
// signals. Rejections are fatal to a single intent, never to the engine.
func IsRejection(err error) bool {
	switch GetCode(err) {
	case ErrCodeUnknownWidget, ErrCodeInvalidTarget:
		return true
	}
	return false
}
