// Package errors provides structured error types for the gridboard engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the failure taxonomy of the normalization and
// validation layers:
//   - PARSE_ERROR / SHAPE_ERROR / SCHEMA_ERROR: external JSON rejected
//   - RANGE_VIOLATION / BOUNDS_VIOLATION / OVERLAP_VIOLATION: geometry checks
//   - INVALID_FORMAT: coordinate-string parsing
//   - DUPLICATE_WIDGET / WIDGET_NOT_FOUND: widget maintenance operations
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "invalid coordinate: %s", s)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // Handle parse failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeParse, origErr, "decode dashboard")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Normalization errors
	ErrCodeParse  Code = "PARSE_ERROR"  // input is not valid JSON
	ErrCodeShape  Code = "SHAPE_ERROR"  // top-level JSON value has the wrong kind
	ErrCodeSchema Code = "SCHEMA_ERROR" // required field missing or wrong primitive type
	ErrCodeEncode Code = "ENCODE_ERROR"

	// Geometry errors
	ErrCodeRange   Code = "RANGE_VIOLATION"   // numeric field outside its declared range
	ErrCodeBounds  Code = "BOUNDS_VIOLATION"  // widget footprint outside the grid
	ErrCodeOverlap Code = "OVERLAP_VIOLATION" // two widget footprints intersect

	// Coordinate codec errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Widget maintenance errors
	ErrCodeDuplicateWidget Code = "DUPLICATE_WIDGET"
	ErrCodeWidgetNotFound  Code = "WIDGET_NOT_FOUND"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code, an optional field path, and an
// optional cause. Field identifies the offending schema location, e.g.
// "widgets[2].position", or the widget id for placement failures.
type Error struct {
	Code    Code   // Machine-readable error code
	Field   string // Schema path or widget id (optional)
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Field != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Code, e.Field, e.Message, e.Cause)
	case e.Field != "":
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
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

// NewField creates a new Error carrying a schema field path or widget id.
func NewField(code Code, field, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Field:   field,
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

// GetField extracts the field path from an error, if available.
// Returns empty string if the error is not an *Error or carries no field.
func GetField(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message (prefixed with the field path when
// present) without the code prefix. For other errors, returns the error
// string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Field != "" {
			return fmt.Sprintf("%s: %s", e.Field, e.Message)
		}
		return e.Message
	}
	return err.Error()
}
