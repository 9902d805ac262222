package invoice

import (
	"errors"
	"fmt"
)

// Common invoice generation errors
var (
	// ErrMissingDate is returned when the invoice record has no issue date.
	ErrMissingDate = errors.New("invoice is missing required field: date")

	// ErrNoItems is returned when the invoice record has no line items.
	ErrNoItems = errors.New("invoice has no items")

	// ErrMissingIBAN is returned when the resolved IBAN is empty after
	// trimming. An invoice cannot be produced without it.
	ErrMissingIBAN = errors.New("config is missing required field: [payment].iban")

	// ErrMissingField is returned when a required record field is absent.
	ErrMissingField = errors.New("missing required field")
)

// GenerationError wraps errors with context about which generation step failed.
type GenerationError struct {
	// Op is the operation that failed (e.g., "LoadFile", "Build").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("invoice: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("invoice: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *GenerationError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(op string, err error, details string) *GenerationError {
	return &GenerationError{Op: op, Err: err, Details: details}
}

// ValidationError represents a field-level problem in invoice or config data.
// Every ValidationError is a deterministic input problem; rerunning after
// fixing the named field resolves it.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}
