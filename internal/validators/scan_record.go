package validators

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/MKhiriev/scan-records/models"
)

const (
	FieldScanData = "scanData"
	FieldBody     = "body"

	MessageScanDataRequired = "Scan data is required"
	MessageMalformedBody    = "Request body must be valid JSON"
)

type ScanRecordValidator struct {
}

func NewScanRecordValidator() Validator {
	return &ScanRecordValidator{}
}

func (v *ScanRecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ScanRecordRequest:
		return v.validateScanRecordRequest(ctx, value, fields...)
	case *models.ScanRecordRequest:
		if value == nil {
			return NewValidationError(ErrEmptyScanData, FieldScanData, MessageScanDataRequired)
		}
		return v.validateScanRecordRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ScanRecordValidator) validateScanRecordRequest(_ context.Context, req models.ScanRecordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldScanData}
	}

	for _, f := range fields {
		switch f {
		case FieldScanData:
			if IsEmptyJSON(req.ScanData) {
				return NewValidationError(ErrEmptyScanData, FieldScanData, MessageScanDataRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsEmptyJSON reports whether raw carries no usable value: absent, null, an
// empty or whitespace-only string, an empty object or an empty array.
func IsEmptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return true
		}
		return len(bytes.TrimSpace([]byte(s))) == 0
	case '{':
		var m map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return true
		}
		return len(m) == 0
	case '[':
		var a []json.RawMessage
		if err := json.Unmarshal(trimmed, &a); err != nil {
			return true
		}
		return len(a) == 0
	}

	return false
}
