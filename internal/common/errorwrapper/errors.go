package errorwrapper

import (
	"errors"
	"fmt"
)

// Common error types used across the application
var (
	// ErrNotARepository indicates the working directory is not inside a git work tree
	ErrNotARepository = errors.New("not a git repository")
	// ErrDetectorUnavailable indicates the external secret detector cannot be run
	ErrDetectorUnavailable = errors.New("secret detector unavailable")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context information
func WrapErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidConfiguration
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// CommandError describes an external process that could not be run or exited nonzero.
type CommandError struct {
	Command string
	Stderr  string
	Wrapped error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command '%s' failed: %v: %s", e.Command, e.Wrapped, e.Stderr)
	}
	return fmt.Sprintf("command '%s' failed: %v", e.Command, e.Wrapped)
}

func (e *CommandError) Unwrap() error {
	return e.Wrapped
}

// NewCommandError creates a new command error
func NewCommandError(command, stderr string, wrapped error) *CommandError {
	return &CommandError{
		Command: command,
		Stderr:  stderr,
		Wrapped: wrapped,
	}
}
