package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/store"
	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/MKhiriev/scan-records/models"
)

type scanRecordService struct {
	repository store.ScanRecordRepository
	logger     *logger.Logger
}

// NewScanRecordService constructs a ScanRecordService backed by repository.
// Ids that are not UUIDs are answered with store.ErrScanRecordNotFound
// without reaching the repository.
func NewScanRecordService(repository store.ScanRecordRepository, logger *logger.Logger) ScanRecordService {
	return &scanRecordService{
		repository: repository,
		logger:     logger,
	}
}

func (s *scanRecordService) ListScanRecords(ctx context.Context) ([]models.ScanRecord, error) {
	records, err := s.repository.ListScanRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing scan records: %w", err)
	}

	return records, nil
}

func (s *scanRecordService) GetScanRecord(ctx context.Context, id string) (models.ScanRecord, error) {
	if !utils.IsUUID(id) {
		return models.ScanRecord{}, store.ErrScanRecordNotFound
	}

	record, err := s.repository.GetScanRecord(ctx, id)
	if err != nil {
		return models.ScanRecord{}, fmt.Errorf("error getting scan record: %w", err)
	}

	return record, nil
}

func (s *scanRecordService) CreateScanRecord(ctx context.Context, req models.ScanRecordRequest) (models.ScanRecord, error) {
	log := s.logger.ForContext(ctx)

	record, err := s.repository.CreateScanRecord(ctx, req.ScanData)
	if err != nil {
		return models.ScanRecord{}, fmt.Errorf("error creating scan record: %w", err)
	}

	log.Info().Str("scan_record_id", record.ID).Msg("scan record created")
	return record, nil
}

func (s *scanRecordService) UpdateScanRecord(ctx context.Context, id string, req models.ScanRecordRequest) (models.ScanRecord, error) {
	if !utils.IsUUID(id) {
		return models.ScanRecord{}, store.ErrScanRecordNotFound
	}

	record, err := s.repository.UpdateScanRecord(ctx, id, req.ScanData)
	if err != nil {
		return models.ScanRecord{}, fmt.Errorf("error updating scan record: %w", err)
	}

	return record, nil
}

func (s *scanRecordService) DeleteScanRecord(ctx context.Context, id string) error {
	log := s.logger.ForContext(ctx)

	if !utils.IsUUID(id) {
		return store.ErrScanRecordNotFound
	}

	if err := s.repository.DeleteScanRecord(ctx, id); err != nil {
		return fmt.Errorf("error deleting scan record: %w", err)
	}

	log.Info().Str("scan_record_id", id).Msg("scan record deleted")
	return nil
}
