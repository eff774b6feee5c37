// Package errors provides error handling utilities.
package errors

import (
	"errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a catalog or request parsing error
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"

	// TypeUnknownConfiguration indicates the requested cabinet
	// configuration is not present in the reference catalog
	TypeUnknownConfiguration Type = "UNKNOWN_CONFIGURATION"

	// TypeEmptyTable indicates a configuration exists but carries no
	// price points; a data-loading defect upstream
	TypeEmptyTable Type = "EMPTY_TABLE"

	// TypeOutOfRange indicates the requested capacity lies outside the
	// interpolation domain and the bounds mode rejects extrapolation
	TypeOutOfRange Type = "OUT_OF_RANGE"
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

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error (or any error it wraps) is of a specific type
func IsType(err error, t Type) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// TypeOf returns the type of an error, or TypeInternal for untyped errors
func TypeOf(err error) Type {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Inputf creates a formatted input error
func Inputf(format string, args ...interface{}) *Error {
	return Newf(TypeInput, format, args...)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

// UnknownConfiguration creates an unknown configuration error
func UnknownConfiguration(id string) *Error {
	return Newf(TypeUnknownConfiguration, "unknown cabinet configuration: %s", id).
		WithContext("configuration", id)
}

// EmptyTable creates an empty table error
func EmptyTable(id string) *Error {
	return Newf(TypeEmptyTable, "no price points for configuration: %s", id).
		WithContext("configuration", id)
}

// OutOfRange creates an out of range error
func OutOfRange(configuration, requested, min, max string) *Error {
	return Newf(TypeOutOfRange,
		"capacity %s kWh outside the known range [%s, %s] for configuration %s",
		requested, min, max, configuration).
		WithContext("configuration", configuration).
		WithContext("requested_kwh", requested).
		WithContext("min_kwh", min).
		WithContext("max_kwh", max)
}
