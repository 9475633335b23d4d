package http

import (
	"net/http"

	"github.com/MKhiriev/scan-records/internal/logger"
)

// withAuthFailureObserver logs a warning for every 401 and 403 response.
// The request logger already carries request_id. Status and body are left
// untouched. Requests that did not pass through withLogging are not observed.
func (h *Handler) withAuthFailureObserver(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rw, ok := w.(*responseWriter); ok {
			rw.OnWriteHeader(func(status int) {
				if status != http.StatusUnauthorized && status != http.StatusForbidden {
					return
				}
				logger.FromRequest(r).Warn().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", status).
					Str("ip", clientIP(r)).
					Msg("authentication failure")
			})
		}

		next.ServeHTTP(w, r)
	})
}
