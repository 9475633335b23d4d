// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageResponse is a plain acknowledgement, e.g. after a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UploadResponse describes a file that was stored in the bucket.
type UploadResponse struct {
	Message string `json:"message"`

	// Filename is the generated storage name (without the key prefix).
	Filename string `json:"filename"`

	// OriginalName is the filename the client sent.
	OriginalName string `json:"originalName"`

	// FileSize is the number of bytes received.
	FileSize int64 `json:"fileSize"`
}

// FieldError is a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response.
//
// RequestID matches the request_id of the log events emitted for the same
// request. Stack is only filled outside production.
type ErrorResponse struct {
	Message   string       `json:"message"`
	RequestID string       `json:"requestId"`
	Stack     string       `json:"stack,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// HealthStatus is the body of the /health endpoint.
type HealthStatus struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
}

// CheckStatus is the outcome of a single named health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
