package http

import (
	"net/http"

	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// withRequestID gives every request a fresh id. Ids sent by clients are
// ignored. The id is stored in the context, attached to a child logger as
// "request_id" and echoed in the X-Request-ID response header.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := h.requestIDs.Generate()

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		ctx := utils.WithRequestID(l.WithContext(r.Context()), requestID)

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
