package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation references a RecordID that is
	// not in the store.
	ErrNotFound = errors.New("record not found")

	// ErrIndexOutOfRange is returned when a row index is outside [0, rowCount).
	ErrIndexOutOfRange = errors.New("row index out of range")
)

// ValidationError reports a field value rejected by the schema
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for field %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
