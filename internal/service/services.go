package service

import (
	"fmt"

	"github.com/MKhiriev/scan-records/internal/config"
	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/store"
	"github.com/MKhiriev/scan-records/models"
)

type Services struct {
	AuthService       AuthService
	ScanRecordService ScanRecordService
	UploadService     UploadService
	HealthService     HealthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	credentials, err := NewStaticCredentialVerifier(cfg.Auth.Username, cfg.Auth.Password)
	if err != nil {
		return nil, fmt.Errorf("error creating credential verifier: %w", err)
	}

	scanRecords := NewScanRecordValidationService().Wrap(
		NewScanRecordService(storages.ScanRecordRepository, logger),
	)

	return &Services{
		AuthService:       NewAuthService(credentials, cfg.Auth, logger),
		ScanRecordService: scanRecords,
		UploadService:     NewUploadService(storages.ObjectStorage, cfg.Upload.MaxFileSize, logger),
		HealthService: NewHealthService(map[string]HealthChecker{
			"database": storages.Database,
			"storage":  storages.ObjectStorage,
		}, buildInfo, cfg.App.IsProduction(), logger),
	}, nil
}
