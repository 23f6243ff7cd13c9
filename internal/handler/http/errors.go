// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned for a body that is not the expected JSON.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoSession is returned when the session cookie is absent.
	ErrNoSession = errors.New("unauthorized")

	// ErrInvalidSession is returned when the session cookie does not carry a
	// valid token.
	ErrInvalidSession = errors.New("forbidden")

	// ErrRouteNotFound answers unknown API paths.
	ErrRouteNotFound = errors.New("not found")

	// ErrTooManyRequests is returned by the rate limiter.
	ErrTooManyRequests = errors.New("too many requests, try again later")
)
