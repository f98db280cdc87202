package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used by the storage adapters.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
)

// DomainError is the closed set of failure codes carried by an error Output.
// A presentation layer maps the code, never the cause's message, to user-facing text.
type DomainError string

const (
	ErrDatabaseFetchFailed  DomainError = "DATABASE_FETCH_FAILED"
	ErrDatabaseInsertFailed DomainError = "DATABASE_INSERT_FAILED"
	ErrDatabaseUpdateFailed DomainError = "DATABASE_UPDATE_FAILED"
	ErrDatabaseDeleteFailed DomainError = "DATABASE_DELETE_FAILED"
	ErrNoUserProvided       DomainError = "NO_USER_PROVIDED"
	ErrLanguageSetFailed    DomainError = "LANGUAGE_SET_FAILED"
)

// DomainErrors lists every code in declaration order.
var DomainErrors = []DomainError{
	ErrDatabaseFetchFailed,
	ErrDatabaseInsertFailed,
	ErrDatabaseUpdateFailed,
	ErrDatabaseDeleteFailed,
	ErrNoUserProvided,
	ErrLanguageSetFailed,
}

func (e DomainError) Error() string  { return string(e) }
func (e DomainError) String() string { return string(e) }

func (e DomainError) IsValid() bool {
	switch e {
	case ErrDatabaseFetchFailed, ErrDatabaseInsertFailed, ErrDatabaseUpdateFailed,
		ErrDatabaseDeleteFailed, ErrNoUserProvided, ErrLanguageSetFailed:
		return true
	}
	return false
}

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
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
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
