package http

import (
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/scan-records/internal/logger"
)

// withLogging emits "incoming request" before dispatch and
// "request completed" after the response has been written. It installs the
// responseWriter later middleware hooks into.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		method := r.Method
		path := r.URL.Path

		log.Info().
			Str("method", method).
			Str("path", path).
			Str("query", r.URL.RawQuery).
			Str("ip", clientIP(r)).
			Str("user_agent", r.UserAgent()).
			Msg("incoming request")

		lw := newResponseWriter(w)

		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", method).
			Str("path", path).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request completed")
	})
}

// clientIP strips the port from RemoteAddr, which middleware.RealIP may
// already have replaced with a forwarded address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
