// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the plant-pal server.
//
// It wires the chi router, the request handlers and the middleware chain:
// trace ids, access logging, metrics, response compression, cookie sessions
// and per-client rate limiting. Handlers decode JSON, call the service layer
// and translate service errors into status codes through errorStatusMap.
package http
