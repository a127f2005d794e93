package common

import (
	"errors"
	"fmt"
)

// Error kinds shared by the store, the policy engine and the query façade.
// Callers wrap them with context and test with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

// InvalidInput wraps ErrInvalidInput with a formatted message.
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound with the name of the missing resource.
func NotFound(resource string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, resource, id)
}

// Forbidden wraps ErrForbidden with a denial reason.
func Forbidden(reason string) error {
	if reason == "" {
		return ErrForbidden
	}
	return fmt.Errorf("%w: %s", ErrForbidden, reason)
}

// Conflict wraps ErrConflict with a message describing the clash.
func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Kind returns the sentinel an error wraps, or nil when it is none of ours.
func Kind(err error) error {
	for _, kind := range []error{ErrInvalidInput, ErrNotFound, ErrForbidden, ErrConflict} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
