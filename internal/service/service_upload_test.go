package service

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/mock"
	"github.com/MKhiriev/scan-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var generatedName = regexp.MustCompile(`^1767225600000-[0-9a-f]{12}\.glb$`)

func newTestUploadSvc(t *testing.T, maxSize int64) (*uploadService, *mock.MockObjectStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockObjectStorage(ctrl)
	svc := NewUploadService(storage, maxSize, logger.Nop()).(*uploadService)
	svc.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return svc, storage
}

func TestUploadService_CheckFilename(t *testing.T) {
	svc, _ := newTestUploadSvc(t, 100)

	for _, name := range []string{"a.obj", "b.PLY", "c.stl", "d.fbx", "e.glb", "f.GLTF", "dir.v2/g.obj"} {
		assert.NoError(t, svc.CheckFilename(name), name)
	}
	for _, name := range []string{"a.txt", "b", "c.glb.exe", ".hidden", "model.zip"} {
		assert.ErrorIs(t, svc.CheckFilename(name), ErrUnsupportedFileType, name)
	}
}

func TestUploadService_Upload_Success(t *testing.T) {
	svc, storage := newTestUploadSvc(t, 1024)
	data := []byte("glTF binary")

	storage.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, object models.StorageObject, body io.Reader) error {
			assert.Regexp(t, `^3d-uploads/1767225600000-[0-9a-f]{12}\.glb$`, object.Key)
			assert.Equal(t, "model/gltf-binary", object.ContentType)
			assert.Equal(t, int64(len(data)), object.Size)
			assert.Equal(t, "scan.glb", object.Metadata["originalName"])
			assert.Equal(t, "2026-01-01T00:00:00Z", object.Metadata["uploadTimestamp"])

			got, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, data, got)
			return nil
		},
	)

	resp, err := svc.Upload(context.Background(), models.UploadedFile{
		OriginalName: "scan.glb",
		ContentType:  "model/gltf-binary",
		Size:         int64(len(data)),
		Data:         data,
	})
	require.NoError(t, err)

	assert.Equal(t, "3D file uploaded successfully", resp.Message)
	assert.Regexp(t, generatedName, resp.Filename)
	assert.NotEqual(t, "scan.glb", resp.Filename)
	assert.Equal(t, "scan.glb", resp.OriginalName)
	assert.Equal(t, int64(len(data)), resp.FileSize)
}

func TestUploadService_Upload_DefaultContentType(t *testing.T) {
	svc, storage := newTestUploadSvc(t, 1024)

	storage.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, object models.StorageObject, _ io.Reader) error {
			assert.Equal(t, "application/octet-stream", object.ContentType)
			return nil
		},
	)

	_, err := svc.Upload(context.Background(), models.UploadedFile{OriginalName: "a.obj", Size: 1, Data: []byte("v")})
	require.NoError(t, err)
}

// TestUploadService_Upload_RejectsBeforeStorage verifies that no storage
// call is made for invalid files.
func TestUploadService_Upload_RejectsBeforeStorage(t *testing.T) {
	svc, _ := newTestUploadSvc(t, 4)

	_, err := svc.Upload(context.Background(), models.UploadedFile{OriginalName: "notes.txt", Size: 1, Data: []byte("x")})
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	_, err = svc.Upload(context.Background(), models.UploadedFile{OriginalName: "big.stl", Size: 5, Data: []byte("12345")})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadService_Upload_StorageFailure(t *testing.T) {
	svc, storage := newTestUploadSvc(t, 1024)

	storage.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("s3 down"))

	_, err := svc.Upload(context.Background(), models.UploadedFile{OriginalName: "a.ply", Size: 1, Data: []byte("p")})
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestUploadService_MaxFileSize(t *testing.T) {
	svc, _ := newTestUploadSvc(t, 77)
	assert.Equal(t, int64(77), svc.MaxFileSize())
}
