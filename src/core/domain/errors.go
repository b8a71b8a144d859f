package domain

import (
	"errors"
	"fmt"
)

// Domain error types for consistent error handling across the application.

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict with the current state.
	ErrConflict = errors.New("conflict")

	// ErrQueryFailed is returned when the database could not run a statement.
	ErrQueryFailed = errors.New("query failed")
)

// DomainError wraps a base error with additional context.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// QueryFailedError reports a database failure for a named repository operation.
// It matches both ErrQueryFailed and the wrapped driver error.
type QueryFailedError struct {
	Op  string
	Err error
}

func (e *QueryFailedError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrQueryFailed.Error(), e.Op, e.Err)
}

func (e *QueryFailedError) Unwrap() []error {
	return []error{ErrQueryFailed, e.Err}
}

// NewQueryFailedError wraps a driver error raised while running op.
func NewQueryFailedError(op string, err error) *QueryFailedError {
	return &QueryFailedError{Op: op, Err: err}
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewConflictError creates a conflict error with context.
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Base:    ErrConflict,
		Message: message,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsQueryFailed checks if an error is a database failure.
func IsQueryFailed(err error) bool {
	return errors.Is(err, ErrQueryFailed)
}
