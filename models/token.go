// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of tokens issued by /api/login.
//
// It embeds [jwt.RegisteredClaims] so that expiry ("exp"), issue time ("iat")
// and subject ("sub") are validated by the jwt library, and adds the two
// application claims downstream handlers rely on.
type Claims struct {
	// UserID is the identifier of the authenticated user. Mirrors "sub".
	UserID string `json:"userId"`

	// Username is the login name of the authenticated user.
	Username string `json:"username"`

	jwt.RegisteredClaims
}

// Token wraps a signed JWT together with its decoded claims.
type Token struct {
	// Claims are the decoded claims of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
