package service

import "errors"

var (
	ErrValidation     = errors.New("validation failed")
	ErrNoAvailability = errors.New("no date in the look-ahead window suits every selected vendor")
	ErrVendorNotFound = errors.New("vendor not found")
)

// ValidationError reports a rejected request field. It matches ErrValidation
// with errors.Is, and unwraps to Err when a more specific cause exists.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
