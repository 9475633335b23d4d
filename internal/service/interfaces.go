package service

import (
	"context"

	"github.com/MKhiriev/scan-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ScanRecordService implements the CRUD operations on scan records.
type ScanRecordService interface {
	ListScanRecords(ctx context.Context) ([]models.ScanRecord, error)
	GetScanRecord(ctx context.Context, id string) (models.ScanRecord, error)
	CreateScanRecord(ctx context.Context, req models.ScanRecordRequest) (models.ScanRecord, error)
	UpdateScanRecord(ctx context.Context, id string, req models.ScanRecordRequest) (models.ScanRecord, error)
	DeleteScanRecord(ctx context.Context, id string) error
}

// ScanRecordServiceWrapper defines middleware composition for ScanRecordService.
// Implementations wrap an existing ScanRecordService to add behavior such as
// validation.
type ScanRecordServiceWrapper interface {
	Wrap(ScanRecordService) ScanRecordService // returns a decorated ScanRecordService applying additional behavior
}

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialVerifier checks a username/password pair and returns the
// matching user. Wrong credentials yield ErrInvalidCredentials.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (models.User, error)
}

// UploadService validates uploaded 3D models and forwards them to the
// object store.
type UploadService interface {
	// CheckFilename rejects names whose extension is not allowed.
	CheckFilename(name string) error
	// MaxFileSize is the largest accepted file in bytes.
	MaxFileSize() int64
	Upload(ctx context.Context, file models.UploadedFile) (models.UploadResponse, error)
}

// HealthChecker reports whether a single dependency is available.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthService aggregates the registered HealthCheckers.
type HealthService interface {
	Check(ctx context.Context) models.HealthStatus
}
