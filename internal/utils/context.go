// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the HTTP layer,
// the services and the store: type-safe context keys, JWT issuing and
// verification, JSON response writing, id and storage-key generation.
package utils

import (
	"context"

	"github.com/MKhiriev/scan-records/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// ClaimsCtxKey is the key under which the auth middleware stores the
	// decoded [models.Claims] of a verified token.
	ClaimsCtxKey = contextKey("claims")

	// RequestIDCtxKey is the key under which the request tracer stores the
	// generated request id.
	RequestIDCtxKey = contextKey("requestID")
)

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// ClaimsFromContext returns the claims stored by the auth middleware.
// ok is false when the request did not pass through token verification.
func ClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, requestID)
}

// RequestIDFromContext returns the request id or an empty string when the
// request was not traced.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDCtxKey).(string)
	return requestID
}
