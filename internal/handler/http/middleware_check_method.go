// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

// notFound is registered as the router's NotFound handler via
// [chi.Mux.NotFound] so that unknown paths get the same JSON error body as
// every other failure.
func (h *Handler) notFound(_ http.ResponseWriter, r *http.Request) error {
	return fmt.Errorf("%w: %s %s", ErrRouteNotFound, r.Method, r.URL.Path)
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. Chi calls
// it when the path matches a route that does not handle the method; the
// Allow header has already been set by then.
func (h *Handler) methodNotAllowed(_ http.ResponseWriter, r *http.Request) error {
	return fmt.Errorf("%w: %s %s", ErrMethodNotAllowed, r.Method, r.URL.Path)
}
