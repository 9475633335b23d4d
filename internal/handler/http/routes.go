package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router. Middleware order: request id, access log, auth
// failure observer, panic recovery, CORS, gzip, body limit, then the routes.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		h.withRequestID,
		h.withLogging,
		h.withAuthFailureObserver,
		h.withRecover,
		cors.Handler(cors.Options{
			AllowedOrigins: h.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding"},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300,
		}),
		h.withGZip,
		h.withBodyLimit,
	)

	router.NotFound(h.wrap(h.notFound))
	router.MethodNotAllowed(h.wrap(h.methodNotAllowed))

	// routes without authorization
	router.Get("/health", h.wrap(h.health))
	router.Post("/api/login", h.wrap(h.login))

	router.Group(func(r chi.Router) {
		if !h.publicScanRecords {
			r.Use(h.auth)
		}
		r.Route("/api/scan-records", h.scanRecordRoutes)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/upload/3d", h.wrap(h.upload3D))
		r.Route("/api/scanrecords", h.scanRecordRoutes)
	})

	return router
}
