// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrUnauthorized is returned when a protected route is called without
	// a usable bearer token.
	ErrUnauthorized = errors.New("authentication token required")

	// ErrForbidden is returned when a bearer token is present but fails
	// signature, expiry or claims verification.
	ErrForbidden = errors.New("invalid or expired token")

	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but has no non-empty second part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrRouteNotFound is returned for paths no route is registered for.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is returned when the path exists but does not
	// handle the requested method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrInvalidMultipart is returned when an upload body cannot be read as
	// multipart/form-data.
	ErrInvalidMultipart = errors.New("invalid multipart body")

	// ErrRequestBodyTooLarge is returned when a JSON body exceeds the
	// configured limit after decoding.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrPanic marks errors built from a recovered panic.
	ErrPanic = errors.New("panic recovered")
)
