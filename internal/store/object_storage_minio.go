package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/scan-records/internal/config"
	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioObjectStorage is the S3-compatible implementation of [ObjectStorage].
type minioObjectStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewMinioObjectStorage builds a client for the configured endpoint. No
// request is sent until the first PutObject or Ping.
func NewMinioObjectStorage(cfg config.S3, log *logger.Logger) (ObjectStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.Secure(),
		Region: cfg.Region,
	})
	if err != nil {
		log.Err(err).Str("func", "NewMinioObjectStorage").Msg("error creating object storage client")
		return nil, fmt.Errorf("error creating object storage client: %w", err)
	}

	log.Debug().
		Str("endpoint", cfg.Endpoint).
		Str("bucket", cfg.BucketName).
		Msg("creating object storage")

	return &minioObjectStorage{
		client: client,
		bucket: cfg.BucketName,
		logger: log,
	}, nil
}

// PutObject uploads the object in a single request. Cancellation of ctx is
// ignored once the body has been received.
func (s *minioObjectStorage) PutObject(ctx context.Context, object models.StorageObject, body io.Reader) error {
	log := logger.FromContext(ctx)

	info, err := s.client.PutObject(context.WithoutCancel(ctx), s.bucket, object.Key, body, object.Size, minio.PutObjectOptions{
		ContentType:  object.ContentType,
		UserMetadata: object.Metadata,
	})
	if err != nil {
		log.Err(err).
			Str("func", "*minioObjectStorage.PutObject").
			Str("key", object.Key).
			Msg("error uploading object")
		return fmt.Errorf("%w: %w", ErrPuttingObject, err)
	}

	log.Debug().
		Str("key", info.Key).
		Int64("size", info.Size).
		Msg("object uploaded")

	return nil
}

func (s *minioObjectStorage) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("error checking bucket %q: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, s.bucket)
	}

	return nil
}
