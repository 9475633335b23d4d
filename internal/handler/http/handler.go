package http

import (
	"github.com/MKhiriev/scan-records/internal/config"
	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/service"
	"github.com/MKhiriev/scan-records/internal/utils"
)

type Handler struct {
	services *service.Services

	// production hides stack traces from error responses.
	production bool
	// publicScanRecords leaves the /api/scan-records mount without auth.
	publicScanRecords bool
	corsOrigins       []string
	// maxBodySize caps decoded non-multipart request bodies.
	maxBodySize int64

	requestIDs *utils.UUIDGenerator
	logger     *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("public_scan_records", cfg.Server.ScanRecordsArePublic()).
		Strs("cors_origins", cfg.Server.CORSOrigins).
		Int64("max_body_size", cfg.Server.BodyLimit()).
		Msg("http handler created")

	return &Handler{
		services:          services,
		production:        cfg.App.IsProduction(),
		publicScanRecords: cfg.Server.ScanRecordsArePublic(),
		corsOrigins:       cfg.Server.CORSOrigins,
		maxBodySize:       cfg.Server.BodyLimit(),
		requestIDs:        utils.NewUUIDGenerator(),
		logger:            logger,
	}
}
