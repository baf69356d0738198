// Package common defines sentinel errors shared by the client and server
// layers of hexplay. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Storage-level errors.
	ErrNotFound          = errors.New("not found")
	ErrVersionConflict   = errors.New("version conflict")
	ErrUniqueViolation   = errors.New("unique constraint violation")
	ErrConnectionFailure = errors.New("storage connection failure")
	ErrReadOnly          = errors.New("write in read-only transaction")
	ErrUnknown           = errors.New("unknown storage error")

	// Use-case errors.
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation error")
	ErrInternal   = errors.New("internal error")

	// Input-specific errors. Both are reported as validation errors.
	ErrInvalidID       = &ValidationError{Field: "id", Message: "must be a non-negative integer"}
	ErrInvalidPageSize = &ValidationError{Field: "page_size", Message: "must be at least 1"}
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports true for ErrValidation so callers can match any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
