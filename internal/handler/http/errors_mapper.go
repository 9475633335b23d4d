package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/scan-records/internal/service"
	"github.com/MKhiriev/scan-records/internal/store"
	"github.com/MKhiriev/scan-records/internal/validators"
)

const (
	internalErrorMessage   = "Internal Server Error"
	validationErrorMessage = "Validation failed"
	requestTooLargeMessage = "Request body too large"
)

// httpError is the status and client-facing message for a sentinel error.
type httpError struct {
	status  int
	message string
}

// errorStatusMap must not hold two sentinels that can appear in one error
// chain with different statuses.
var errorStatusMap = map[error]httpError{
	ErrUnauthorized:     {http.StatusUnauthorized, "Authentication token required"},
	ErrForbidden:        {http.StatusForbidden, "Invalid or expired token"},
	ErrRouteNotFound:    {http.StatusNotFound, "Route not found"},
	ErrMethodNotAllowed: {http.StatusMethodNotAllowed, "Method not allowed"},
	ErrInvalidMultipart: {http.StatusBadRequest, "Invalid multipart body"},

	ErrRequestBodyTooLarge: {http.StatusRequestEntityTooLarge, requestTooLargeMessage},

	service.ErrInvalidCredentials:      {http.StatusUnauthorized, "Invalid credentials"},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusForbidden, "Invalid or expired token"},
	service.ErrNoFileUploaded:          {http.StatusBadRequest, "No file uploaded"},
	service.ErrUnsupportedFileType:     {http.StatusBadRequest, "Invalid file type, only 3D model files are allowed"},
	service.ErrFileTooLarge:            {http.StatusRequestEntityTooLarge, "File too large"},
	service.ErrUploadFailed:            {http.StatusInternalServerError, "Failed to upload file"},

	validators.ErrEmptyScanData: {http.StatusBadRequest, validationErrorMessage},
	validators.ErrMalformedBody: {http.StatusBadRequest, validationErrorMessage},

	store.ErrScanRecordNotFound: {http.StatusNotFound, "Scan record not found"},
}

// statusFromError returns the HTTP status and the message shown to the
// client for err. Unknown errors are internal: their text never reaches the
// response message.
func statusFromError(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, requestTooLargeMessage
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErrorMessage
	}

	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			return mapped.status, mapped.message
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}
