package business

import (
	"errors"
)

// ErrInvalidArgument is the single error kind raised when a tax input violates a constraint.
// Match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError describes which field failed and why
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError creates a ValidationError for field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// IsInvalidArgument reports whether err is (or wraps) an invalid argument failure
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
