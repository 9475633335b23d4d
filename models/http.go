// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ScanRecordRequest is the body of create and update requests.
//
// ScanData is kept raw so that any JSON value can be stored verbatim;
// emptiness is checked by the validators package.
type ScanRecordRequest struct {
	ScanData json.RawMessage `json:"scanData"`
}

// LoginRequest carries the credentials posted to /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
