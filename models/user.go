// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is an authenticated principal. It is not persisted: the API has a
// single configured account and only the identity ends up inside tokens.
type User struct {
	// UserID becomes the "userId" and "sub" claims of issued tokens.
	UserID string `json:"userId"`

	// Username becomes the "username" claim of issued tokens.
	Username string `json:"username"`
}
