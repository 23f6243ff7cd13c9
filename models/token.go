// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by a PlantPal session token.
// The user id travels in the registered "sub" claim.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Token wraps a signed session token together with its decoded claims.
type Token struct {
	// Claims are the decoded (or about to be signed) session claims.
	Claims SessionClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Identity converts the token claims into a request identity.
func (t *Token) Identity() (Identity, error) {
	userID, err := t.GetUserID()
	if err != nil {
		return Identity{}, err
	}

	return Identity{UserID: userID, Email: t.Claims.Email}, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
