// Package apperr defines the error taxonomy shared by services and handlers.
// Services wrap these sentinels with context; handlers map them to HTTP
// statuses without leaking internal details (SQL text, driver errors).
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or incomplete input, rejected before
	// any mutation begins.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an operation targeting an identity that does not
	// exist. No side effects.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness violation (duplicate SKU, username,
	// setting key).
	ErrConflict = errors.New("conflict")
)

// Validationf wraps ErrValidation with a formatted detail message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf wraps ErrNotFound with a formatted detail message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflictf wraps ErrConflict with a formatted detail message.
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
