package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSchemaDrift marks a query that referenced a column the backing
	// schema does not have.
	ErrSchemaDrift = errors.New("schema drift")
)

// SchemaDriftError reports the column a query needed but the schema lacks.
// It matches ErrSchemaDrift and the underlying driver error.
type SchemaDriftError struct {
	Column string
	Err    error
}

func (e *SchemaDriftError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: %v", ErrSchemaDrift, e.Err)
	}
	return fmt.Sprintf("%s: column %q missing: %v", ErrSchemaDrift, e.Column, e.Err)
}

func (e *SchemaDriftError) Unwrap() []error { return []error{ErrSchemaDrift, e.Err} }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s is %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
