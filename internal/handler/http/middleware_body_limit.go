package http

import (
	"net/http"
	"strings"
)

// withBodyLimit caps request bodies at maxBodySize. It runs after withGZip,
// so the limit applies to decoded bytes. Multipart uploads are bounded by the
// upload size limit instead.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Body != nil && req.Body != http.NoBody &&
			!strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/") {
			req.Body = http.MaxBytesReader(w, req.Body, h.maxBodySize)
		}

		next.ServeHTTP(w, req)
	})
}
