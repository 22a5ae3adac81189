package service

import "fmt"

// ValidationError reports malformed or out-of-range input. It is always
// raised before any write is attempted, so nothing is persisted when one
// comes back.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
