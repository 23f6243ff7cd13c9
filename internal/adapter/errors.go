// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by the upstream clients. Raw upstream bodies are
// never part of these errors.
var (
	// ErrMissingCredential is returned when the client has no API key.
	ErrMissingCredential = errors.New("upstream credential is not configured")

	// ErrNotFound is returned for an upstream 404.
	ErrNotFound = errors.New("upstream resource not found")

	// ErrRateLimited is returned for an upstream 429.
	ErrRateLimited = errors.New("upstream rate limit exceeded")

	// ErrUpstream covers transport failures, other non-2xx statuses and
	// undecodable bodies.
	ErrUpstream = errors.New("upstream request failed")

	// ErrEmptyModelResponse is returned when the model reply has no text.
	ErrEmptyModelResponse = errors.New("language model returned an empty response")
)
