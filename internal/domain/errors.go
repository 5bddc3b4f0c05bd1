package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when a required field is missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrApplicationNotFound is returned when an identifier does not match any application
	ErrApplicationNotFound = errors.New("application not found")

	// ErrInvalidDate is returned when dateApplied cannot be parsed as a calendar date
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidStatus is returned for a status outside the pipeline
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidationError describes which field failed structural validation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new validation error for field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidDateError wraps the parse failure of a date string
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}
