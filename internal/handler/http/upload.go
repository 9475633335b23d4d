package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/scan-records/internal/service"
	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/MKhiriev/scan-records/models"
)

// uploadFieldName is the multipart form field carrying the model file.
const uploadFieldName = "model"

// upload3D streams the multipart body part by part. Parts other than
// "model" are skipped; the model part is rejected on its filename before
// any of its bytes are buffered.
func (h *Handler) upload3D(w http.ResponseWriter, r *http.Request) error {
	reader, err := r.MultipartReader()
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrNoFileUploaded, err)
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return service.ErrNoFileUploaded
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
		}

		if part.FormName() != uploadFieldName {
			part.Close()
			continue
		}

		file, err := h.readModelPart(part)
		part.Close()
		if err != nil {
			return err
		}

		response, err := h.services.UploadService.Upload(r.Context(), file)
		if err != nil {
			return fmt.Errorf("error uploading %q: %w", file.OriginalName, err)
		}

		utils.WriteJSON(w, response, http.StatusOK)
		return nil
	}
}

// readModelPart buffers the part in memory, reading at most one byte past
// the size limit to detect oversized files.
func (h *Handler) readModelPart(part *multipart.Part) (models.UploadedFile, error) {
	name := part.FileName()
	if name == "" {
		return models.UploadedFile{}, fmt.Errorf("%w: field %q is not a file", service.ErrNoFileUploaded, uploadFieldName)
	}

	svc := h.services.UploadService
	if err := svc.CheckFilename(name); err != nil {
		return models.UploadedFile{}, err
	}

	limit := svc.MaxFileSize()
	data, err := io.ReadAll(io.LimitReader(part, limit+1))
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
	}
	if int64(len(data)) > limit {
		return models.UploadedFile{}, fmt.Errorf("%w: %q exceeds %d bytes", service.ErrFileTooLarge, name, limit)
	}

	return models.UploadedFile{
		OriginalName: name,
		ContentType:  part.Header.Get("Content-Type"),
		Size:         int64(len(data)),
		Data:         data,
	}, nil
}
