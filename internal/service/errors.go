// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)

// Plant directory errors.
var (
	ErrDirectoryNotConfigured = errors.New("plant directory API key is not configured")
	ErrSpeciesNotFound        = errors.New("species not found")
	ErrDirectoryRateLimited   = errors.New("plant directory rate limit reached, try again later")
	ErrDirectoryUnavailable   = errors.New("plant directory is unavailable")
)

// Advisor errors.
var (
	ErrAdvisorNotConfigured = errors.New("plant advisor is not configured")
	ErrAdvisorUnavailable   = errors.New("plant advisor is unavailable")
	ErrEmptyModelResponse   = errors.New("plant advisor returned no answer")
	ErrInsightsParse        = errors.New("failed to parse insights response")
)
