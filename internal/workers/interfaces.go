// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the server.
// It defines the Worker interface and a Workers aggregate that starts
// several workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is a background job.
//
// Run must not block: implementations start their own goroutines and stop
// them when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper drops entries idle for longer than idle and reports how many it
// removed.
type Sweeper interface {
	Sweep(idle time.Duration) int
}
