package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/scan-records/internal/service"
	"github.com/MKhiriev/scan-records/internal/store"
	"github.com/MKhiriev/scan-records/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", validators.NewValidationError(validators.ErrEmptyScanData, "scanData", "Scan data is required"), http.StatusBadRequest},
		{"wrapped validation error", fmt.Errorf("create: %w", malformedBody(errors.New("EOF"))), http.StatusBadRequest},
		{"missing token", fmt.Errorf("%w: %w", ErrUnauthorized, ErrEmptyAuthorizationHeader), http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"rejected token", fmt.Errorf("%w: %w", ErrForbidden, service.ErrTokenIsExpiredOrInvalid), http.StatusForbidden},
		{"record not found", fmt.Errorf("get: %w", store.ErrScanRecordNotFound), http.StatusNotFound},
		{"route not found", ErrRouteNotFound, http.StatusNotFound},
		{"method not allowed", ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{"unsupported file", service.ErrUnsupportedFileType, http.StatusBadRequest},
		{"no file", service.ErrNoFileUploaded, http.StatusBadRequest},
		{"file too large", service.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"body over limit", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge},
		{"body over limit as malformed body", malformedBody(fmt.Errorf("decode: %w", &http.MaxBytesError{Limit: 10})), http.StatusRequestEntityTooLarge},
		{"upload failed", fmt.Errorf("%w: %w", service.ErrUploadFailed, store.ErrPuttingObject), http.StatusInternalServerError},
		{"store unavailable", store.ErrStoreUnavailable, http.StatusInternalServerError},
		{"unknown", errors.New("something odd"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.want, status)
			assert.NotEmpty(t, message)
		})
	}
}

func TestStatusFromError_UnknownMessageIsGeneric(t *testing.T) {
	_, message := statusFromError(errors.New("connection string with password"))

	assert.Equal(t, "Internal Server Error", message)
}
