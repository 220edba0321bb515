package model

import "fmt"

// ValidationError reports an authoring violation (empty answer, empty
// phrasing set, empty topic). It is always surfaced to the caller.
type ValidationError struct {
	Field  string // Which input failed validation
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
