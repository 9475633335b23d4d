// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// ScanStatus is the processing state of a scan record. The set of values
// matches the scan_record_status enum in the database.
type ScanStatus string

const (
	// ScanStatusPending is assigned to every freshly created record.
	ScanStatusPending ScanStatus = "pending"

	// ScanStatusProcessed marks a record that external processing has finished.
	ScanStatusProcessed ScanStatus = "processed"

	// ScanStatusFailed marks a record that external processing gave up on.
	ScanStatusFailed ScanStatus = "failed"
)

// IsValid reports whether s is one of the known statuses.
func (s ScanStatus) IsValid() bool {
	switch s {
	case ScanStatusPending, ScanStatusProcessed, ScanStatusFailed:
		return true
	}
	return false
}

// ScanRecord is a persisted scan with an arbitrary JSON payload.
//
// ID, CreatedAt and UpdatedAt are assigned by the store; ScanData is the only
// field clients can write. ProcessedAt is filled by external processing and is
// never touched by the API.
type ScanRecord struct {
	// ID is the UUID of the record. Generated on creation, never reassigned.
	ID string `json:"id"`

	// ScanData is the raw JSON document supplied by the client.
	// It is never null or empty while the record exists.
	ScanData json.RawMessage `json:"scanData"`

	// Status is the processing state, pending by default.
	Status ScanStatus `json:"status"`

	// ProcessedAt is nil until external processing sets it.
	ProcessedAt *time.Time `json:"processedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the ScanRecord model.
func (ScanRecord) TableName() string {
	return "scan_records"
}
