package http

import (
	"net/http"

	"github.com/MKhiriev/scan-records/internal/service"
	"github.com/MKhiriev/scan-records/internal/utils"
)

// health reports 200 when every dependency check passes and 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	status := h.services.HealthService.Check(r.Context())

	code := http.StatusOK
	if status.Status != service.StatusHealthy {
		code = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, status, code)
	return nil
}
