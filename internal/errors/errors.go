// Package errors provides consistent error types for Worklog.
// Failures fall into four kinds the transport layer must be able to tell
// apart: not-found, validation, range-too-large, and store failures.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrRangeTooLarge    = errors.New("export range exceeds 12 months")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidRange     = errors.New("invalid date range")
)

// ValidationError represents a malformed or missing request parameter.
// It is rejected before any store access and the caller can fix it.
type ValidationError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The parameter that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message, suggestion string) *ValidationError {
	return &ValidationError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewValidationErrorWithField creates a new ValidationError with field context.
func NewValidationErrorWithField(field, value, message, suggestion string) *ValidationError {
	return &ValidationError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// StoreError represents a failure at the entry store boundary that the
// caller cannot fix: connection loss, transaction failure, corruption.
// It is propagated as-is and never retried inside the core.
type StoreError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *StoreError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// Is marks every StoreError as an ErrStoreUnavailable.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// NewStoreError creates a new StoreError.
func NewStoreError(message string, cause error) *StoreError {
	return &StoreError{
		Message: message,
		Cause:   cause,
	}
}

// NewStoreErrorWithOp creates a new StoreError with operation context.
func NewStoreErrorWithOp(op, message string, cause error) *StoreError {
	return &StoreError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// IsNotFound checks if an error means the referenced entry does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntryNotFound)
}

// IsValidation checks if an error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRangeTooLarge checks if an error is the export span cap violation.
func IsRangeTooLarge(err error) bool {
	return errors.Is(err, ErrRangeTooLarge)
}

// IsStore checks if an error originated at the store boundary.
func IsStore(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// AsValidation extracts a ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsStore extracts a StoreError from an error chain.
func AsStore(err error) (*StoreError, bool) {
	var se *StoreError
	ok := errors.As(err, &se)
	return se, ok
}
