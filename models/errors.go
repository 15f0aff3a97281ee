package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by storage when a record does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports a structurally invalid section, field schema or
// link. Surfaced to the administrator, never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// BindingError reports a submitted value that failed coercion or a required
// field that is missing. Surfaced to the end user as a field-level message.
type BindingError struct {
	Field   string
	Section string
	Message string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

func NewBindingError(section, field, format string, args ...any) *BindingError {
	return &BindingError{
		Field:   field,
		Section: section,
		Message: fmt.Sprintf(format, args...),
	}
}

// ConflictError reports a stale write rejected by optimistic concurrency.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
