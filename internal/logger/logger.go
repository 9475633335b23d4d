// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// scan-records service.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs the process-wide *Logger for the given service name.
//
// In production the logger writes JSON to os.Stdout at Info level. In any
// other environment it writes human-readable, colorized lines at Debug level.
// Every entry carries:
//   - a "service" field set to service;
//   - a "time" timestamp;
//   - a "func" caller field with the fully-qualified function name.
func NewLogger(service string, production bool) *Logger {
	if production {
		return newLogger(os.Stdout, service, zerolog.InfoLevel)
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	return newLogger(console, service, zerolog.DebugLevel)
}

func newLogger(w io.Writer, service string, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).
		Level(level).
		With().
		Str("service", service).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP handlers that run behind the request
// tracer, which attaches a request-scoped logger carrying the request id.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// ForContext returns the request-scoped logger attached to ctx, or l when
// ctx carries no enabled logger. Services use it so that background calls
// without a request still log through the process logger.
func (l *Logger) ForContext(ctx context.Context) *Logger {
	if zl := zerolog.Ctx(ctx); zl.GetLevel() != zerolog.Disabled {
		return &Logger{*zl}
	}
	return l
}
