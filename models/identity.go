// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the authenticated caller attached to a request context by the
// session middleware.
type Identity struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}
