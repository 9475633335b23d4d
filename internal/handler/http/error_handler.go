package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/scan-records/internal/logger"
	"github.com/MKhiriev/scan-records/internal/utils"
	"github.com/MKhiriev/scan-records/internal/validators"
	"github.com/MKhiriev/scan-records/models"
)

// handlerFunc is an HTTP handler that reports failures by returning them.
type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap adapts h to [http.HandlerFunc], sending any returned error to
// handleError. h must not write a response when it returns an error.
func (h *Handler) wrap(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.handleError(w, r, err)
		}
	}
}

// handleError is the terminal stage for every failed request. The error
// chain is used as the stack.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	h.writeError(w, r, err, err.Error())
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, stack string) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Int("status", status).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("stack", stack).
		Msg("request failed")

	response := models.ErrorResponse{
		Message:   message,
		RequestID: utils.RequestIDFromContext(r.Context()),
	}
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		response.Errors = validationErr.Fields
	}
	if !h.production {
		response.Stack = stack
	}

	utils.WriteJSON(w, response, status)
}

// withRecover turns a panic in any later stage into a 500 written by the
// terminal error stage. [http.ErrAbortHandler] is re-raised. A panic after
// the status line went out cannot be reported in the body any more, so it is
// logged and the connection is aborted.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := fmt.Errorf("%w: %v", ErrPanic, rec)
			if rw, ok := w.(*responseWriter); ok && rw.Started() {
				logger.FromRequest(r).Error().Err(err).
					Int("status", rw.Status()).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("stack", string(debug.Stack())).
					Msg("panic after response started, aborting connection")
				panic(http.ErrAbortHandler)
			}
			h.writeError(w, r, err, string(debug.Stack()))
		}()

		next.ServeHTTP(w, r)
	})
}
