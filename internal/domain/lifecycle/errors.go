package lifecycle

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrValidation        = errors.New("validation failed")
	ErrForbidden         = errors.New("actor not allowed")
)

// TransitionError names the command that was refused and the status it was refused in.
type TransitionError struct {
	Command string
	From    string
	Reason  string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid transition: %s from %s: %s", e.Command, e.From, e.Reason)
	}
	return fmt.Sprintf("invalid transition: %s from %s", e.Command, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func forbidden(command string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrForbidden, command, reason)
}
