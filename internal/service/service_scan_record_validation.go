package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scan-records/internal/validators"
	"github.com/MKhiriev/scan-records/models"
)

// ScanRecordValidationService rejects malformed create and update payloads
// before they reach the wrapped service. Reads and deletes pass through.
type ScanRecordValidationService struct {
	inner     ScanRecordService
	validator validators.Validator
}

func NewScanRecordValidationService() ScanRecordServiceWrapper {
	return &ScanRecordValidationService{
		validator: validators.NewScanRecordValidator(),
	}
}

func (v *ScanRecordValidationService) ListScanRecords(ctx context.Context) ([]models.ScanRecord, error) {
	return v.inner.ListScanRecords(ctx)
}

func (v *ScanRecordValidationService) GetScanRecord(ctx context.Context, id string) (models.ScanRecord, error) {
	return v.inner.GetScanRecord(ctx, id)
}

func (v *ScanRecordValidationService) CreateScanRecord(ctx context.Context, req models.ScanRecordRequest) (models.ScanRecord, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ScanRecord{}, fmt.Errorf("error during scan record validation before saving: %w", err)
	}

	return v.inner.CreateScanRecord(ctx, req)
}

func (v *ScanRecordValidationService) UpdateScanRecord(ctx context.Context, id string, req models.ScanRecordRequest) (models.ScanRecord, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ScanRecord{}, fmt.Errorf("error during scan record validation before updating: %w", err)
	}

	return v.inner.UpdateScanRecord(ctx, id, req)
}

func (v *ScanRecordValidationService) DeleteScanRecord(ctx context.Context, id string) error {
	return v.inner.DeleteScanRecord(ctx, id)
}

func (v *ScanRecordValidationService) Wrap(wrapped ScanRecordService) ScanRecordService {
	v.inner = wrapped
	return v
}
