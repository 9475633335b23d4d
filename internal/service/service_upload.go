package service

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/store"
	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/MKhiriev/scan-records/models"
)

const (
	// UploadKeyPrefix is prepended to every stored model key.
	UploadKeyPrefix = "3d-uploads/"

	defaultContentType = "application/octet-stream"
	uploadSuccessMsg   = "3D file uploaded successfully"
)

// AllowedModelExtensions lists the accepted 3D model extensions.
var AllowedModelExtensions = []string{".obj", ".ply", ".stl", ".fbx", ".glb", ".gltf"}

type uploadService struct {
	storage     store.ObjectStorage
	maxFileSize int64
	now         func() time.Time
	logger      *logger.Logger
}

// NewUploadService constructs an UploadService that stores accepted files
// in storage.
func NewUploadService(storage store.ObjectStorage, maxFileSize int64, logger *logger.Logger) UploadService {
	return &uploadService{
		storage:     storage,
		maxFileSize: maxFileSize,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *uploadService) CheckFilename(name string) error {
	if !slices.Contains(AllowedModelExtensions, utils.NormalizedExt(name)) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFileType, name)
	}
	return nil
}

func (s *uploadService) MaxFileSize() int64 {
	return s.maxFileSize
}

// Upload stores file under "3d-uploads/<unix-millis>-<12 hex><ext>".
//
// The extension and size are checked first; nothing is sent to the store
// when either check fails.
func (s *uploadService) Upload(ctx context.Context, file models.UploadedFile) (models.UploadResponse, error) {
	log := s.logger.ForContext(ctx)

	if err := s.CheckFilename(file.OriginalName); err != nil {
		return models.UploadResponse{}, err
	}
	if file.Size > s.maxFileSize {
		return models.UploadResponse{}, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFileTooLarge, file.Size, s.maxFileSize)
	}

	now := s.now()
	filename, err := utils.GenerateSecureFilename(file.OriginalName, now)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	object := models.StorageObject{
		Key:         UploadKeyPrefix + filename,
		ContentType: contentType,
		Size:        file.Size,
		Metadata: map[string]string{
			"originalName":    file.OriginalName,
			"uploadTimestamp": now.UTC().Format(time.RFC3339),
		},
	}

	if err = s.storage.PutObject(ctx, object, bytes.NewReader(file.Data)); err != nil {
		return models.UploadResponse{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	log.Info().
		Str("key", object.Key).
		Str("original_name", file.OriginalName).
		Int64("size", file.Size).
		Msg("3D file uploaded")

	return models.UploadResponse{
		Message:      uploadSuccessMsg,
		Filename:     filename,
		OriginalName: file.OriginalName,
		FileSize:     file.Size,
	}, nil
}
