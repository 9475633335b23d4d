package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/scan-records/internal/config"
	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/MKhiriev/scan-records/models"
)

// authService is the concrete implementation of AuthService.
// Credentials are checked by a CredentialVerifier; tokens are HS256 JWTs
// signed with the configured secret.
type authService struct {
	// credentials checks login requests.
	credentials CredentialVerifier

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService using credentials for login
// and the token settings from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(credentials CredentialVerifier, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		credentials:   credentials,
		tokenSignKey:  cfg.JWTSecret,
		tokenDuration: cfg.JWTExpiresIn.Std(),
		logger:        logger,
	}
}

// Login verifies the credentials and issues a token for the matching user.
//
// Returns ErrInvalidCredentials when the pair does not match, or
// ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := a.logger.ForContext(ctx)

	user, err := a.credentials.Verify(ctx, req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			log.Err(err).Str("username", req.Username).Msg("credential verification failed")
		}
		return models.Token{}, err
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.Token{}, err
	}

	log.Info().Str("username", user.Username).Msg("user logged in")
	return token, nil
}

// CreateToken issues a signed JWT for the given user that expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, bad signature, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		a.logger.ForContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
