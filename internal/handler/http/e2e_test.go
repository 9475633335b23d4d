package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/scan-records/internal/config"
	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/service"
	"github.com/MKhiriev/scan-records/internal/store"
	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/MKhiriev/scan-records/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository is an in-memory store.ScanRecordRepository.
type memoryRepository struct {
	mu      sync.Mutex
	records map[string]models.ScanRecord
	ids     *utils.UUIDGenerator
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{records: map[string]models.ScanRecord{}, ids: utils.NewUUIDGenerator()}
}

func (m *memoryRepository) ListScanRecords(context.Context) ([]models.ScanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := make([]models.ScanRecord, 0, len(m.records))
	for _, r := range m.records {
		records = append(records, r)
	}
	return records, nil
}

func (m *memoryRepository) GetScanRecord(_ context.Context, id string) (models.ScanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return models.ScanRecord{}, store.ErrScanRecordNotFound
	}
	return r, nil
}

func (m *memoryRepository) CreateScanRecord(_ context.Context, scanData json.RawMessage) (models.ScanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	r := models.ScanRecord{ID: m.ids.Generate(), ScanData: scanData, Status: models.ScanStatusPending, CreatedAt: now, UpdatedAt: now}
	m.records[r.ID] = r
	return r, nil
}

func (m *memoryRepository) UpdateScanRecord(_ context.Context, id string, scanData json.RawMessage) (models.ScanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return models.ScanRecord{}, store.ErrScanRecordNotFound
	}
	r.ScanData = scanData
	r.UpdatedAt = time.Now().UTC()
	m.records[id] = r
	return r, nil
}

func (m *memoryRepository) DeleteScanRecord(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return store.ErrScanRecordNotFound
	}
	delete(m.records, id)
	return nil
}

// memoryObjectStorage is an in-memory store.ObjectStorage.
type memoryObjectStorage struct {
	mu      sync.Mutex
	objects map[string]models.StorageObject
	bodies  map[string][]byte
}

func (m *memoryObjectStorage) PutObject(_ context.Context, object models.StorageObject, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[object.Key] = object
	m.bodies[object.Key] = data
	return nil
}

func (m *memoryObjectStorage) Ping(context.Context) error { return nil }

type alwaysUp struct{}

func (alwaysUp) Ping(context.Context) error { return nil }

func newE2EServer(t *testing.T) (*resty.Client, *memoryObjectStorage) {
	t.Helper()

	objects := &memoryObjectStorage{objects: map[string]models.StorageObject{}, bodies: map[string][]byte{}}
	storages := &store.Storages{
		Database:             alwaysUp{},
		ScanRecordRepository: newMemoryRepository(),
		ObjectStorage:        objects,
	}
	cfg := testConfig(func(c *config.StructuredConfig) {
		c.Auth = config.Auth{
			JWTSecret:    "e2e-secret",
			JWTExpiresIn: config.Duration(time.Hour),
			Username:     "admin",
			Password:     "password",
		}
		c.Upload.MaxFileSize = 1024
	})

	svcs, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("e2e", "", ""), logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(svcs, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL), objects
}

func login(t *testing.T, client *resty.Client) string {
	t.Helper()
	var out models.LoginResponse
	resp, err := client.R().
		SetBody(models.LoginRequest{Username: "admin", Password: "password"}).
		SetResult(&out).
		Post("/api/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Equal(t, "Authentication successful", out.Message)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestE2E_ScanRecordLifecycle(t *testing.T) {
	client, _ := newE2EServer(t)

	var health models.HealthStatus
	resp, err := client.R().SetResult(&health).Get("/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "e2e", health.Version)

	var failure models.ErrorResponse
	resp, err = client.R().
		SetBody(models.LoginRequest{Username: "admin", Password: "wrong"}).
		SetError(&failure).
		Post("/api/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, "Invalid credentials", failure.Message)

	resp, err = client.R().Get("/api/scanrecords")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	resp, err = client.R().SetAuthToken("not.a.token").Get("/api/scanrecords")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	token := login(t, client)
	authed := func() *resty.Request { return client.R().SetAuthToken(token) }

	var created models.ScanRecord
	resp, err = authed().
		SetBody(map[string]any{"scanData": map[string]any{"vertices": 1024, "device": "lidar"}}).
		SetResult(&created).
		Post("/api/scanrecords")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.True(t, utils.IsUUID(created.ID))
	assert.Equal(t, models.ScanStatusPending, created.Status)
	assert.Nil(t, created.ProcessedAt)
	assert.NotEmpty(t, resp.Header().Get(requestIDHeader))

	for _, body := range []string{`{}`, `{"scanData":null}`, `{"scanData":""}`, `{"scanData":{}}`, `{"scanData":[]}`} {
		var invalid models.ErrorResponse
		resp, err = authed().SetHeader("Content-Type", "application/json").SetBody(body).SetError(&invalid).Post("/api/scanrecords")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode(), body)
		assert.Equal(t, []models.FieldError{{Field: "scanData", Message: "Scan data is required"}}, invalid.Errors, body)
	}

	var fetched models.ScanRecord
	resp, err = client.R().SetResult(&fetched).Get("/api/scan-records/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, created.ID, fetched.ID)
	assert.JSONEq(t, `{"vertices":1024,"device":"lidar"}`, string(fetched.ScanData))

	var updated models.ScanRecord
	resp, err = authed().
		SetBody(map[string]any{"scanData": map[string]any{"vertices": 2048}}).
		SetResult(&updated).
		Put("/api/scanrecords/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"vertices":2048}`, string(updated.ScanData))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	var list []models.ScanRecord
	resp, err = client.R().SetResult(&list).Get("/api/scan-records")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, list, 1)

	var deleted models.MessageResponse
	resp, err = authed().SetResult(&deleted).Delete("/api/scanrecords/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Scan record deleted successfully", deleted.Message)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		resp, err = authed().Execute(method, "/api/scanrecords/"+created.ID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode(), method)
	}

	resp, err = client.R().Get("/api/scan-records/not-a-uuid")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestE2E_Upload(t *testing.T) {
	client, objects := newE2EServer(t)
	token := login(t, client)

	var uploaded models.UploadResponse
	resp, err := client.R().
		SetAuthToken(token).
		SetFileReader("model", "Bunny.PLY", bytes.NewReader([]byte("ply\nformat ascii 1.0\n"))).
		SetResult(&uploaded).
		Post("/api/upload/3d")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, "3D file uploaded successfully", uploaded.Message)
	assert.Equal(t, "Bunny.PLY", uploaded.OriginalName)
	assert.True(t, strings.HasSuffix(uploaded.Filename, ".PLY"))
	assert.Equal(t, int64(len("ply\nformat ascii 1.0\n")), uploaded.FileSize)

	object, ok := objects.objects[service.UploadKeyPrefix+uploaded.Filename]
	require.True(t, ok)
	assert.Equal(t, "Bunny.PLY", object.Metadata["originalName"])
	assert.Equal(t, "ply\nformat ascii 1.0\n", string(objects.bodies[object.Key]))

	var failure models.ErrorResponse
	resp, err = client.R().
		SetAuthToken(token).
		SetFileReader("model", "readme.txt", strings.NewReader("text")).
		SetError(&failure).
		Post("/api/upload/3d")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, "Invalid file type, only 3D model files are allowed", failure.Message)

	resp, err = client.R().
		SetAuthToken(token).
		SetFileReader("model", "huge.stl", bytes.NewReader(make([]byte, 2048))).
		Post("/api/upload/3d")
	require.NoError(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode())

	assert.Len(t, objects.objects, 1)
}
