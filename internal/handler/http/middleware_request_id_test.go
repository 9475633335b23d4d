package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newTestHandler(t)
	h.logger = bufferLogger(&buf)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.RequestIDFromContext(r.Context())
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "client-chosen")
	rr := serve(h.withRequestID(next), req)

	require.True(t, utils.IsUUID(seen))
	assert.NotEqual(t, "client-chosen", seen)
	assert.Equal(t, seen, rr.Header().Get(requestIDHeader))

	events := logLines(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, seen, events[0]["request_id"])
}

func TestWithRequestID_UniquePerRequest(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.withRequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	first := serve(router, httptest.NewRequest(http.MethodGet, "/", nil)).Header().Get(requestIDHeader)
	second := serve(router, httptest.NewRequest(http.MethodGet, "/", nil)).Header().Get(requestIDHeader)

	assert.NotEqual(t, first, second)
}
