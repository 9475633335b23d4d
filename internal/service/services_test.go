package service

import (
	"testing"

	"github.com/MKhiriev/scan-records/internal/config"
	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/mock"
	"github.com/MKhiriev/scan-records/internal/store"
	"github.com/MKhiriev/scan-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		Database:             mock.NewMockPinger(ctrl),
		ScanRecordRepository: mock.NewMockScanRecordRepository(ctrl),
		ObjectStorage:        mock.NewMockObjectStorage(ctrl),
	}
	cfg := &config.StructuredConfig{
		Auth:   config.Auth{JWTSecret: "s", Username: "admin", Password: "password"},
		Upload: config.Upload{MaxFileSize: 10},
	}

	svcs, err := NewServices(storages, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, svcs.AuthService)
	assert.IsType(t, &ScanRecordValidationService{}, svcs.ScanRecordService)
	assert.Equal(t, int64(10), svcs.UploadService.MaxFileSize())
	assert.NotNil(t, svcs.HealthService)
}
