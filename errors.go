package payroll

import "fmt"

// ErrValidation and ErrMapping are sentinel errors for errors.Is checks.
// Input validation failures (§7.1) wrap ErrValidation; commission-transition
// and scale-crosswalk failures (§7.2) wrap ErrMapping.
var (
	ErrValidation = fmt.Errorf("payroll: validation error")
	ErrMapping    = fmt.Errorf("payroll: mapping error")
)

// ValidationError names the offending field alongside a human-readable reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// MappingError records a failed lookup when carrying pay across a commission
// transition, a scale-to-scale crosswalk, or a grade-pay-to-level table.
type MappingError struct {
	Operation string
	Key       string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s: no mapping found for %q", e.Operation, e.Key)
}

func (e *MappingError) Unwrap() error {
	return ErrMapping
}

func newMappingError(operation, key string) error {
	return &MappingError{Operation: operation, Key: key}
}
