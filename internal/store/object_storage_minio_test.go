package store

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/scan-records/internal/config"
	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	header http.Header
	body   []byte
}

// newFakeS3 answers every request with status and records what it saw.
func newFakeS3(t *testing.T, status int) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen = append(seen, recordedRequest{method: r.Method, path: r.URL.Path, header: r.Header.Clone(), body: body})
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv, &seen
}

func newTestObjectStorage(t *testing.T, srv *httptest.Server) ObjectStorage {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	storage, err := NewMinioObjectStorage(config.S3{
		BucketName:      "models",
		Region:          "us-east-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		Endpoint:        u.Host,
		UseSSL:          config.ToggleOff,
	}, logger.Nop())
	require.NoError(t, err)

	return storage
}

func TestMinioObjectStorage_PutObject(t *testing.T) {
	srv, seen := newFakeS3(t, http.StatusOK)
	storage := newTestObjectStorage(t, srv)

	payload := []byte("solid cube\nendsolid cube\n")
	err := storage.PutObject(context.Background(), models.StorageObject{
		Key:         "3d-uploads/1700000000000-a1b2c3d4e5f6.stl",
		ContentType: "model/stl",
		Size:        int64(len(payload)),
		Metadata: map[string]string{
			"originalName":    "cube.stl",
			"uploadTimestamp": "2026-01-01T00:00:00Z",
		},
	}, bytes.NewReader(payload))
	require.NoError(t, err)

	require.NotEmpty(t, *seen)
	last := (*seen)[len(*seen)-1]
	assert.Equal(t, http.MethodPut, last.method)
	assert.Equal(t, "/models/3d-uploads/1700000000000-a1b2c3d4e5f6.stl", last.path)
	assert.Equal(t, "model/stl", last.header.Get("Content-Type"))
	assert.Equal(t, "cube.stl", last.header.Get("X-Amz-Meta-OriginalName"))
	assert.Equal(t, "2026-01-01T00:00:00Z", last.header.Get("X-Amz-Meta-UploadTimestamp"))
	// the body may be aws-chunked when a trailing checksum is sent
	assert.True(t, bytes.Contains(last.body, payload))
}

func TestMinioObjectStorage_PutObjectRejected(t *testing.T) {
	srv, _ := newFakeS3(t, http.StatusForbidden)
	storage := newTestObjectStorage(t, srv)

	err := storage.PutObject(context.Background(), models.StorageObject{
		Key:  "3d-uploads/x.obj",
		Size: 1,
	}, bytes.NewReader([]byte("v")))
	assert.ErrorIs(t, err, ErrPuttingObject)
}

func TestMinioObjectStorage_Ping(t *testing.T) {
	srv, seen := newFakeS3(t, http.StatusOK)
	storage := newTestObjectStorage(t, srv)

	require.NoError(t, storage.Ping(context.Background()))
	require.NotEmpty(t, *seen)
	assert.Equal(t, http.MethodHead, (*seen)[0].method)
}

func TestMinioObjectStorage_PingMissingBucket(t *testing.T) {
	srv, _ := newFakeS3(t, http.StatusNotFound)
	storage := newTestObjectStorage(t, srv)

	assert.ErrorIs(t, storage.Ping(context.Background()), ErrBucketNotFound)
}
