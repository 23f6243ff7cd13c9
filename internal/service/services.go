// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/plant-pal/internal/adapter"
	"github.com/MKhiriev/plant-pal/internal/cache"
	"github.com/MKhiriev/plant-pal/internal/config"
	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/store"
	"github.com/MKhiriev/plant-pal/models"
)

// Services bundles every service the HTTP handler depends on.
type Services struct {
	AuthService      AuthService
	PlantService     PlantService
	DirectoryService DirectoryService
	AdvisorService   AdvisorService
	AppInfoService   AppInfoService
}

// Upstreams are the external clients the services call.
type Upstreams struct {
	Directory adapter.PlantDirectory
	Model     adapter.LanguageModel

	// CacheObserver receives hit and miss events of both directory caches.
	// May be nil.
	CacheObserver cache.Observer
}

func NewServices(storages *store.Storages, upstreams Upstreams, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	suggestions := cache.NewTTL[string, []models.SpeciesSuggestion]("suggestions", cfg.Cache.SuggestionsTTL,
		cache.WithObserver[string, []models.SpeciesSuggestion](upstreams.CacheObserver))
	details := cache.NewTTL[int64, models.SpeciesDetail]("details", cfg.Cache.DetailsTTL,
		cache.WithObserver[int64, models.SpeciesDetail](upstreams.CacheObserver))

	directoryService := NewDirectoryService(upstreams.Directory, suggestions, details, logger)
	plantService := NewPlantValidationService().Wrap(
		NewPlantService(storages.PlantRepository, directoryService, cfg.Adapter.Perenual, logger),
	)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		PlantService:     plantService,
		DirectoryService: directoryService,
		AdvisorService:   NewAdvisorService(upstreams.Model, storages.PlantRepository, logger),
		AppInfoService:   appInfoService,
	}, nil
}
