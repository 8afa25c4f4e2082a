package domain

import "errors"

var (
	// ErrNotFound reports an identifier that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput reports a missing or malformed field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidTransition reports a status change that would move a
	// lifecycle backward or bypass a required step.
	ErrInvalidTransition = errors.New("invalid status transition")
)
