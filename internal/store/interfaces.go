package store

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MKhiriev/scan-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ScanRecordRepository persists scan records. Every method issues exactly one
// SQL statement.
type ScanRecordRepository interface {
	// ListScanRecords returns the ten most recently created records, newest first.
	ListScanRecords(ctx context.Context) ([]models.ScanRecord, error)
	// GetScanRecord returns the record with the given id or ErrScanRecordNotFound.
	GetScanRecord(ctx context.Context, id string) (models.ScanRecord, error)
	// CreateScanRecord inserts a pending record with a freshly generated id.
	CreateScanRecord(ctx context.Context, scanData json.RawMessage) (models.ScanRecord, error)
	// UpdateScanRecord replaces scan data and bumps updated_at.
	UpdateScanRecord(ctx context.Context, id string, scanData json.RawMessage) (models.ScanRecord, error)
	// DeleteScanRecord removes the record permanently.
	DeleteScanRecord(ctx context.Context, id string) error
}

// Pinger is implemented by backends that can report their availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ObjectStorage stores uploaded files in a bucket.
type ObjectStorage interface {
	// PutObject stores object.Size bytes read from body under object.Key.
	PutObject(ctx context.Context, object models.StorageObject, body io.Reader) error
	// Ping verifies that the configured bucket exists.
	Pinger
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
