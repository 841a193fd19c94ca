package models

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a request value the domain cannot work with.
var ErrInvalidInput = errors.New("invalid input")

// InputError names the rejected field. It matches ErrInvalidInput with errors.Is.
type InputError struct {
	Field  string
	Reason string
}

// NewInputError creates an InputError.
func NewInputError(field, format string, args ...interface{}) *InputError {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
