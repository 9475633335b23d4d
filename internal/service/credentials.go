package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/scan-records/models"
	"golang.org/x/crypto/bcrypt"
)

// StaticUserID is the id of the single configured account.
const StaticUserID = "123"

// staticCredentialVerifier accepts exactly one username/password pair. The
// password is kept only as a bcrypt hash.
type staticCredentialVerifier struct {
	username     string
	passwordHash []byte
}

// NewStaticCredentialVerifier hashes password with bcrypt and returns a
// verifier for the single account username.
func NewStaticCredentialVerifier(username, password string) (CredentialVerifier, error) {
	return newStaticCredentialVerifier(username, password, bcrypt.DefaultCost)
}

func newStaticCredentialVerifier(username, password string, cost int) (*staticCredentialVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	return &staticCredentialVerifier{
		username:     username,
		passwordHash: hash,
	}, nil
}

func (v *staticCredentialVerifier) Verify(_ context.Context, username, password string) (models.User, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	err := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return models.User{}, fmt.Errorf("error comparing password: %w", err)
	}

	if !usernameOK || err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return models.User{UserID: StaticUserID, Username: v.username}, nil
}
