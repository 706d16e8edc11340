package normalize

import (
	"errors"
	"fmt"
)

// Validation failure categories. Every *ValidationError wraps exactly one.
var (
	ErrMissingField     = errors.New("missing field")
	ErrInvalidField     = errors.New("invalid field")
	ErrInvalidTimestamp = errors.New("invalid timestamp format")
	ErrSensorNotFound   = errors.New("sensor not found")
	ErrInvalidValue     = errors.New("invalid numeric value")
	ErrInvalidSource    = errors.New("invalid source")
)

// ValidationError is a client-caused rejection of a submitted payload.
type ValidationError struct {
	// Field is the payload key the failure refers to.
	Field string
	// Detail is the offending input, when it helps the caller.
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingField), errors.Is(e.Err, ErrInvalidField):
		return fmt.Sprintf("%s '%s'", e.Err, e.Field)
	case errors.Is(e.Err, ErrSensorNotFound), errors.Is(e.Err, ErrInvalidSource):
		return fmt.Sprintf("%s: %s", e.Err, e.Detail)
	default:
		return e.Err.Error()
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a payload validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func missing(field string) error {
	return &ValidationError{Field: field, Err: ErrMissingField}
}

func invalidField(field string) error {
	return &ValidationError{Field: field, Err: ErrInvalidField}
}
