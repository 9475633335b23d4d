package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/scan-records/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidJWTParams is returned by GenerateJWTToken when the user, the
// duration or the sign key is missing.
var ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for user.
//
// The token carries the application claims "userId" and "username" plus the
// registered claims:
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.User{UserID: "123", Username: "admin"}, time.Hour, "secret")
func GenerateJWTToken(user models.User, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if user.UserID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := models.Claims{
		UserID:   user.UserID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies tokenString against tokenSignKey and
// returns its claims.
//
// Validation includes the signature (HS256 only), the expiration claim,
// which is required, and the presence of a user id. The check depends only
// on the token, the key and the current time.
func ValidateAndParseJWTToken(tokenString, tokenSignKey string) (models.Token, error) {
	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization" header value
// of the form "<scheme> <token>".
//
// The scheme itself is not checked, only the second space-separated part is
// taken. ok is false when that part is missing or empty.
func ParseBearerToken(authorizationHeader string) (string, bool) {
	parts := strings.Split(authorizationHeader, " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
