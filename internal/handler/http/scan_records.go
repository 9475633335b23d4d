package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/MKhiriev/scan-records/internal/validators"
	"github.com/MKhiriev/scan-records/models"
	"github.com/go-chi/chi/v5"
)

const scanRecordDeletedMsg = "Scan record deleted successfully"

// scanRecordRoutes registers the CRUD routes. It is mounted twice, under
// /api/scan-records and /api/scanrecords.
func (h *Handler) scanRecordRoutes(r chi.Router) {
	r.Get("/", h.wrap(h.listScanRecords))
	r.Post("/", h.wrap(h.createScanRecord))
	r.Get("/{id}", h.wrap(h.getScanRecord))
	r.Put("/{id}", h.wrap(h.updateScanRecord))
	r.Delete("/{id}", h.wrap(h.deleteScanRecord))
}

func (h *Handler) listScanRecords(w http.ResponseWriter, r *http.Request) error {
	records, err := h.services.ScanRecordService.ListScanRecords(r.Context())
	if err != nil {
		return fmt.Errorf("error listing scan records: %w", err)
	}

	utils.WriteJSON(w, records, http.StatusOK)
	return nil
}

func (h *Handler) getScanRecord(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	record, err := h.services.ScanRecordService.GetScanRecord(r.Context(), id)
	if err != nil {
		return fmt.Errorf("error getting scan record %q: %w", id, err)
	}

	utils.WriteJSON(w, record, http.StatusOK)
	return nil
}

func (h *Handler) createScanRecord(w http.ResponseWriter, r *http.Request) error {
	var req models.ScanRecordRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		return malformedBody(err)
	}

	record, err := h.services.ScanRecordService.CreateScanRecord(r.Context(), req)
	if err != nil {
		return fmt.Errorf("error creating scan record: %w", err)
	}

	utils.WriteJSON(w, record, http.StatusCreated)
	return nil
}

func (h *Handler) updateScanRecord(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	var req models.ScanRecordRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		return malformedBody(err)
	}

	record, err := h.services.ScanRecordService.UpdateScanRecord(r.Context(), id, req)
	if err != nil {
		return fmt.Errorf("error updating scan record %q: %w", id, err)
	}

	utils.WriteJSON(w, record, http.StatusOK)
	return nil
}

func (h *Handler) deleteScanRecord(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	if err := h.services.ScanRecordService.DeleteScanRecord(r.Context(), id); err != nil {
		return fmt.Errorf("error deleting scan record %q: %w", id, err)
	}

	utils.WriteJSON(w, models.MessageResponse{Message: scanRecordDeletedMsg}, http.StatusOK)
	return nil
}

// malformedBody reports an unreadable JSON body as a validation failure on
// the "body" field.
func malformedBody(cause error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(cause, &maxBytesErr) {
		return fmt.Errorf("%w: %w", ErrRequestBodyTooLarge, cause)
	}

	return fmt.Errorf("%w: %w",
		validators.NewValidationError(validators.ErrMalformedBody, validators.FieldBody, validators.MessageMalformedBody),
		cause,
	)
}
