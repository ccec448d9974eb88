package config

import (
	"errors"
	"fmt"

	"github.com/remixlab/dandelion/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrTypeMismatch indicates a value of the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidBinding indicates a binding entry that cannot be applied.
	ErrInvalidBinding = errors.New("invalid binding")

	// ErrUnsupportedFormat indicates a file extension or format name with no loader.
	ErrUnsupportedFormat = loader.ErrUnsupportedFormat
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// TypeError is returned when a value has the wrong type.
type TypeError struct {
	// Path is the setting path, e.g. "bindings[2].clicks".
	Path string
	// Expected is the expected type name.
	Expected string
	// Actual is the actual type name.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// BindingError describes a binding entry that failed validation.
type BindingError struct {
	// Index is the position of the entry in the bindings list, or -1 for
	// a standalone binding.
	Index int
	// Field names the offending field.
	Field string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("bindings[%d].%s: %v", e.Index, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *BindingError) Unwrap() error {
	return e.Err
}

// Is implements error matching for BindingError.
func (e *BindingError) Is(target error) bool {
	return target == ErrInvalidBinding
}
