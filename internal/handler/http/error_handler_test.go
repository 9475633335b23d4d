package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/scan-records/internal/config"
	"github.com/MKhiriev/scan-records/internal/store"
	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/MKhiriev/scan-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWrap_NoErrorLeavesResponse(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h.wrap(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusAccepted)
		return nil
	}), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestHandleError_LogLevels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  int
	}{
		{name: "client error is a warning", err: store.ErrScanRecordNotFound, wantLevel: "warn", wantCode: http.StatusNotFound},
		{name: "server error is an error", err: fmt.Errorf("db: %w", store.ErrStoreUnavailable), wantLevel: "error", wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h, _ := newTestHandler(t)

			req := httptest.NewRequest(http.MethodPut, "/api/scan-records/42", nil)
			ctx := utils.WithRequestID(bufferLogger(&buf).WithContext(req.Context()), "req-1")
			rr := serve(h.wrap(func(http.ResponseWriter, *http.Request) error { return tt.err }), req.WithContext(ctx))

			require.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, "req-1", decodeError(t, rr).RequestID)

			events := logLines(t, &buf)
			require.Len(t, events, 1)
			assert.Equal(t, tt.wantLevel, events[0]["level"])
			assert.Equal(t, float64(tt.wantCode), events[0]["status"])
			assert.Equal(t, http.MethodPut, events[0]["method"])
			assert.Equal(t, "/api/scan-records/42", events[0]["path"])
			assert.Equal(t, tt.err.Error(), events[0]["stack"])
		})
	}
}

func TestWithRecover(t *testing.T) {
	tests := []struct {
		name       string
		production bool
	}{
		{name: "development exposes stack"},
		{name: "production hides stack", production: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, func(c *config.StructuredConfig) {
				if tt.production {
					c.App.Environment = config.EnvironmentProduction
				}
			})
			panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("kaboom") })

			rr := serve(h.withRecover(panicking), httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, http.StatusInternalServerError, rr.Code)
			body := decodeError(t, rr)
			assert.Equal(t, "Internal Server Error", body.Message)
			if tt.production {
				assert.Empty(t, body.Stack)
				return
			}
			assert.Contains(t, body.Stack, "goroutine")
		})
	}
}

func TestWithRecover_AbortHandlerIsRepanicked(t *testing.T) {
	h, _ := newTestHandler(t)
	aborting := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(h.withRecover(aborting), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRouter_PanicGoesThroughTerminalStage(t *testing.T) {
	h, m := newTestHandler(t)
	m.scanRecords.EXPECT().ListScanRecords(gomock.Any()).DoAndReturn(func(context.Context) ([]models.ScanRecord, error) {
		panic("nil map")
	})

	rr := serve(h.Init(), httptest.NewRequest(http.MethodGet, "/api/scan-records", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, rr.Header().Get(requestIDHeader), decodeError(t, rr).RequestID)
}

func TestWithRecover_PanicAfterCompressedBodyAbortsConnection(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newTestHandler(t)
	partial := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id":`))
		panic("nil map")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/scan-records", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	req = req.WithContext(bufferLogger(&buf).WithContext(req.Context()))
	rr := httptest.NewRecorder()

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withRecover(h.withGZip(partial)).ServeHTTP(newResponseWriter(rr), req)
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.NotContains(t, rr.Body.String(), "Internal Server Error")

	events := logLines(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, "error", events[0]["level"])
	assert.Equal(t, "panic after response started, aborting connection", events[0]["message"])
	assert.Contains(t, events[0]["stack"], "goroutine")
}

func TestWithRecover_PanicBeforeCompressedBodyIsPlainJSON(t *testing.T) {
	h, _ := newTestHandler(t)
	deferred := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		panic("nil map")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/scan-records", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	h.withRecover(h.withGZip(deferred)).ServeHTTP(newResponseWriter(rr), req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Internal Server Error", decodeError(t, rr).Message)
}
