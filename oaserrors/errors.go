package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrNotFound indicates no operation matched the requested path and method.
	ErrNotFound = errors.New("endpoint not found")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a circular $ref was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrGeneration indicates the schema document generator failed.
	ErrGeneration = errors.New("schema generation error")

	// ErrParse indicates a schema document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// NotFoundError reports that the schema document has no operation for a path
// and method. It names both so the caller can surface them unchanged.
type NotFoundError struct {
	// Path is the requested path template (e.g., "/users/{user_id}")
	Path string
	// Method is the requested HTTP method, upper-cased
	Method string
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("endpoint not found: %s %s", e.Method, e.Path)
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReferenceError represents a $ref that was left in place or replaced by a
// placeholder while inlining an operation.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// IsCircular is true if the ref was already being resolved higher up
	IsCircular bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrCircularReference when IsCircular is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	return target == ErrCircularReference && e.IsCircular
}

// GenerationError wraps a failure of the host's schema document generator.
// The cause is surfaced unchanged to the tool caller.
type GenerationError struct {
	// Source identifies the generator (e.g., a file path or "kin-openapi")
	Source string
	// Cause is the underlying error
	Cause error
}

// Error returns a human-readable error message.
func (e *GenerationError) Error() string {
	msg := "schema generation error"
	if e.Source != "" {
		msg += " (" + e.Source + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

// ParseError represents a failure to decode a schema document.
type ParseError struct {
	// Format is the detected source format: "json" or "yaml"
	Format string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
