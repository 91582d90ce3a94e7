// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeParse indicates a malformed tolerance designation
	TypeParse Type = "PARSE_ERROR"

	// TypeOutOfRange indicates a nominal size outside the supported range
	TypeOutOfRange Type = "OUT_OF_RANGE"

	// TypeUnsupportedGrade indicates a tolerance grade outside the valid set
	TypeUnsupportedGrade Type = "UNSUPPORTED_GRADE"

	// TypeUnsupportedLetter indicates a deviation letter outside the supported set
	TypeUnsupportedLetter Type = "UNSUPPORTED_LETTER"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Parse creates a designation parse error
func Parse(message string) *Error {
	return New(TypeParse, message)
}

// Parsef creates a formatted designation parse error
func Parsef(format string, args ...interface{}) *Error {
	return Newf(TypeParse, format, args...)
}

// OutOfRange creates an out-of-range error for a nominal size
func OutOfRange(size, max float64) *Error {
	return Newf(TypeOutOfRange, "nominal size %g mm outside supported range (0, %g]", size, max)
}

// UnsupportedGrade creates an unsupported grade error
func UnsupportedGrade(grade, min, max int) *Error {
	return Newf(TypeUnsupportedGrade, "tolerance grade IT%d outside supported range IT%d-IT%d", grade, min, max)
}

// UnsupportedLetter creates an unsupported letter error
func UnsupportedLetter(letter string) *Error {
	return Newf(TypeUnsupportedLetter, "deviation letter not supported: %q", letter)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
