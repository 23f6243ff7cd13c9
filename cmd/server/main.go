// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/plant-pal/internal/adapter"
	"github.com/MKhiriev/plant-pal/internal/config"
	"github.com/MKhiriev/plant-pal/internal/handler"
	"github.com/MKhiriev/plant-pal/internal/handler/http"
	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/metrics"
	"github.com/MKhiriev/plant-pal/internal/server"
	"github.com/MKhiriev/plant-pal/internal/service"
	"github.com/MKhiriev/plant-pal/internal/store"
	"github.com/MKhiriev/plant-pal/internal/workers"
	"github.com/MKhiriev/plant-pal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	log := logger.NewLogger("plant-pal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.IsProduction() {
		log = logger.NewLogger("plant-pal-server", logger.WithLevel(zerolog.InfoLevel))
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("environment", cfg.App.Environment).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer closeWithLog(log, "storages", storages.Close)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	model, err := adapter.NewGeminiModel(ctx, cfg.Adapter.Gemini, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating language model")
	}
	defer closeWithLog(log, "language model", model.Close)

	upstreams := service.Upstreams{
		Directory:     adapter.NewPerenualDirectory(cfg.Adapter.Perenual, collector, log),
		Model:         model,
		CacheObserver: collector,
	}

	services, err := service.NewServices(storages, upstreams, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	opts := []http.Option{http.WithMetrics(collector, metrics.Handler(registry))}
	backgroundWorkers := workers.NewWorkers()
	if cfg.Server.RateLimitRPS > 0 {
		limiter := http.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
		opts = append(opts, http.WithRateLimiter(limiter))
		backgroundWorkers = workers.NewWorkers(
			workers.NewSweepWorker("rate-limiter", limiter, cfg.Workers.LimiterCleanupInterval, cfg.Workers.LimiterIdleTTL, log),
		)
	}

	handlers, err := handler.NewHandlers(services, *cfg, log, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func closeWithLog(log *logger.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Error().Err(err).Str("resource", name).Msg("error closing resource")
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
