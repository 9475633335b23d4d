package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/MKhiriev/scan-records/models"
)

const loginSuccessMsg = "Authentication successful"

func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		return malformedBody(err)
	}

	log.Debug().Str("username", req.Username).Msg("login attempt")

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		return fmt.Errorf("error logging in: %w", err)
	}

	utils.WriteJSON(w, models.LoginResponse{Message: loginSuccessMsg, Token: token.SignedString}, http.StatusOK)
	return nil
}
