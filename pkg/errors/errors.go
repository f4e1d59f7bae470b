// Package errors provides structured error types for hashart.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP server and the library
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The generation engine surfaces three fatal conditions:
//   - MALFORMED_HASH: the hash has no parseable hexadecimal content
//   - UNKNOWN_VARIANT: a shape variant or motif name is not in the catalog
//   - INVALID_CONFIG: a generation config fails validation
//
// Everything else is input validation (INVALID_*), lookups (NOT_FOUND) or
// unexpected internal failures (INTERNAL_ERROR).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "width must be positive, got %d", w)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // reject before drawing
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "encode png")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Generation errors
	ErrCodeMalformedHash  Code = "MALFORMED_HASH"
	ErrCodeUnknownVariant Code = "UNKNOWN_VARIANT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidLabel Code = "INVALID_LABEL"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodePresetNotFound Code = "PRESET_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// IsInputError reports whether err was caused by bad caller input rather
// than an internal failure. Servers use it to pick 4xx over 5xx.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeMalformedHash, ErrCodeUnknownVariant, ErrCodeInvalidConfig,
		ErrCodeInvalidInput, ErrCodeInvalidLabel, ErrCodeInvalidPath:
		return true
	}
	return false
}
