// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/plant-pal/internal/config"
	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/metrics"
	"github.com/MKhiriev/plant-pal/internal/service"
	"github.com/MKhiriev/plant-pal/internal/utils"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services

	session sessionSettings

	limiter        *RateLimiter
	recorder       metrics.Recorder
	metricsHandler http.Handler

	staticDir string
	traceIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

// sessionSettings describe the session cookie.
type sessionSettings struct {
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// Option customizes NewHandler.
type Option func(*Handler)

// WithRateLimiter limits the directory and advisor routes per client.
func WithRateLimiter(limiter *RateLimiter) Option {
	return func(h *Handler) {
		h.limiter = limiter
	}
}

// WithMetrics records request metrics with recorder and serves /metrics
// with handler. A nil handler leaves /metrics unregistered.
func WithMetrics(recorder metrics.Recorder, handler http.Handler) Option {
	return func(h *Handler) {
		if recorder != nil {
			h.recorder = recorder
		}
		h.metricsHandler = handler
	}
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		session: sessionSettings{
			cookieName: cfg.App.CookieName,
			maxAge:     cfg.App.TokenDuration,
			secure:     cfg.App.IsProduction(),
		},
		recorder:  metrics.Nop{},
		staticDir: cfg.Server.StaticDir,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
