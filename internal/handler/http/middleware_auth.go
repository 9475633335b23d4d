package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/scan-records/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// A missing "Authorization" header, or one without a token part, fails with
// [ErrUnauthorized] (401). A token that does not verify against the signing
// secret or has expired fails with [ErrForbidden] (403). On success the
// decoded claims are stored in the request context (see
// [utils.ClaimsFromContext]) before delegating to the next handler.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			h.handleError(w, r, fmt.Errorf("%w: %w", ErrUnauthorized, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.handleError(w, r, fmt.Errorf("%w: %w", ErrForbidden, err))
			return
		}

		ctx = utils.WithClaims(ctx, token.Claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, ok := utils.ParseBearerToken(authHeader)
	if !ok {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
