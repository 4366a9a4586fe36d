package config

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed indicates configuration validation failed
	ErrValidationFailed = errors.New("configuration validation failed")

	// ErrInvalidValue indicates a field has an invalid value
	ErrInvalidValue = errors.New("invalid field value")
)

// ValidationError wraps configuration validation errors with the offending option.
type ValidationError struct {
	Option string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("option %q: %v", e.Option, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error for a configuration option.
func NewValidationError(option string, err error) error {
	return &ValidationError{Option: option, Err: err}
}
