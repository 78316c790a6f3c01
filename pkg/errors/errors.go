// Package errors provides structured error types for hillclimb.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes describe which stage failed and whether the failure is a property of
// the input (MALFORMED_GRID, MISSING_ENDPOINT), a legitimate search outcome
// (NOT_FOUND, NO_PATH_FROM_ANY_SOURCE) or an operational limit (TIMEOUT).
// All failures are deterministic functions of the input; none are retried.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingEndpoint, "no start marker 'S' in grid")
//	if errors.Is(err, errors.ErrCodeMissingEndpoint) {
//	    // Handle load error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedGrid, ioErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Grid loading errors
	ErrCodeMalformedGrid   Code = "MALFORMED_GRID"
	ErrCodeMissingEndpoint Code = "MISSING_ENDPOINT"

	// Search outcomes surfaced as errors
	ErrCodeNotFound            Code = "NOT_FOUND"
	ErrCodeNoPathFromAnySource Code = "NO_PATH_FROM_ANY_SOURCE"
	ErrCodeTimeout             Code = "TIMEOUT"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

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

// IsNoSolution reports whether err is one of the "no path" outcomes.
// Callers use it to report a distinct "no solution" result instead of a
// generic failure.
func IsNoSolution(err error) bool {
	switch GetCode(err) {
	case ErrCodeNotFound, ErrCodeNoPathFromAnySource:
		return true
	}
	return false
}
