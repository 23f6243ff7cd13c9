// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/plant-pal/internal/logger"
)

// SweepWorker periodically calls Sweep on its target, for example to drop
// the buckets of clients that stopped sending requests.
type SweepWorker struct {
	name     string
	target   Sweeper
	interval time.Duration
	idle     time.Duration

	logger *logger.Logger
}

func NewSweepWorker(name string, target Sweeper, interval, idle time.Duration, logger *logger.Logger) *SweepWorker {
	return &SweepWorker{
		name:     name,
		target:   target,
		interval: interval,
		idle:     idle,
		logger:   logger,
	}
}

// Run starts the sweep loop. A non-positive interval disables it.
func (s *SweepWorker) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Warn().Str("worker", s.name).Msg("sweep interval is not positive, worker disabled")
		return
	}

	go s.loop(ctx)
}

func (s *SweepWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug().Str("worker", s.name).Msg("sweep worker stopped")
			return
		case <-ticker.C:
			if removed := s.target.Sweep(s.idle); removed > 0 {
				s.logger.Debug().Str("worker", s.name).Int("removed", removed).Msg("idle entries swept")
			}
		}
	}
}
