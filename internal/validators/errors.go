package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/scan-records/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyScanData = errors.New("scan data is required")
	ErrMalformedBody = errors.New("request body is not valid JSON")
)

// ValidationError collects field-level messages for a rejected request.
// It unwraps to the sentinel of the first failed rule.
type ValidationError struct {
	Fields []models.FieldError
	cause  error
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(cause error, field, message string) *ValidationError {
	return &ValidationError{
		Fields: []models.FieldError{{Field: field, Message: message}},
		cause:  cause,
	}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}
