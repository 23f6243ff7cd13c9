// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/plant-pal/internal/config"
	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/store"
	"github.com/MKhiriev/plant-pal/internal/validators"
	"github.com/MKhiriev/plant-pal/models"
)

// Defaults applied when a plant is added from the directory and the
// directory record has no value for the field.
const (
	DefaultWateringFrequency = "Water as needed"
	DefaultSunlight          = "Information not available"
)

type plantService struct {
	plantRepository store.PlantRepository
	directory       DirectoryService

	// retryDelay is the pause before the single retry of a rate-limited
	// directory lookup.
	retryDelay time.Duration
	newBackoff func(delay time.Duration) retry.Backoff

	logger *logger.Logger
}

// NewPlantService constructs the PlantService. directory is used only when
// a plant is added by species id.
func NewPlantService(plantRepository store.PlantRepository, directory DirectoryService, cfg config.Perenual, logger *logger.Logger) PlantService {
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = config.DefaultPerenualRetryDelay
	}

	return &plantService{
		plantRepository: plantRepository,
		directory:       directory,
		retryDelay:      retryDelay,
		newBackoff:      retry.NewConstant,
		logger:          logger,
	}
}

func (p *plantService) ListPlants(ctx context.Context, userID int64) ([]models.Plant, error) {
	plants, err := p.plantRepository.ListPlants(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing plants: %w", err)
	}
	return plants, nil
}

// AddPlant stores a plant for userID. With request.SpeciesID set, the fields
// the caller left empty are taken from the directory record:
//
//	name      request name, then common name, then scientific name
//	species   scientific name
//	watering  directory value, then DefaultWateringFrequency
//	sunlight  directory value, then DefaultSunlight
//	notes     species description
//	image     directory image
func (p *plantService) AddPlant(ctx context.Context, userID int64, request models.AddPlantRequest) (models.Plant, error) {
	plant := models.Plant{
		UserID:            userID,
		Name:              strings.TrimSpace(request.Name),
		Species:           strings.TrimSpace(request.Species),
		WateringFrequency: strings.TrimSpace(request.WateringFrequency),
		Sunlight:          strings.TrimSpace(request.Sunlight),
		Notes:             strings.TrimSpace(request.Notes),
		ImageURL:          strings.TrimSpace(request.ImageURL),
	}

	if request.SpeciesID != nil {
		detail, err := p.speciesDetails(ctx, *request.SpeciesID)
		if err != nil {
			return models.Plant{}, err
		}
		fillFromDirectory(&plant, detail)
	}
	if plant.Name == "" {
		return models.Plant{}, validators.ErrEmptyPlantName
	}

	created, err := p.plantRepository.CreatePlant(ctx, plant)
	if err != nil {
		return models.Plant{}, fmt.Errorf("error adding plant: %w", err)
	}
	return created, nil
}

// speciesDetails retries a rate-limited lookup once after retryDelay.
func (p *plantService) speciesDetails(ctx context.Context, speciesID int64) (models.SpeciesDetail, error) {
	backoff := retry.WithMaxRetries(1, p.newBackoff(p.retryDelay))

	attempt := 0
	return retry.DoValue(ctx, backoff, func(ctx context.Context) (models.SpeciesDetail, error) {
		attempt++
		detail, err := p.directory.Details(ctx, speciesID)
		if !errors.Is(err, ErrDirectoryRateLimited) {
			return detail, err
		}

		if attempt == 1 {
			logger.FromContext(ctx).Warn().
				Int64("species_id", speciesID).
				Dur("retry_in", p.retryDelay).
				Msg("plant directory rate limited, retrying once")
		}
		return models.SpeciesDetail{}, retry.RetryableError(err)
	})
}

func fillFromDirectory(plant *models.Plant, detail models.SpeciesDetail) {
	plant.Name = firstNonEmpty(plant.Name, detail.CommonName, detail.ScientificName, plant.Species)
	plant.Species = firstNonEmpty(plant.Species, detail.ScientificName)
	plant.WateringFrequency = firstNonEmpty(plant.WateringFrequency, detail.WateringFrequency, DefaultWateringFrequency)
	plant.Sunlight = firstNonEmpty(plant.Sunlight, detail.Sunlight, DefaultSunlight)
	plant.Notes = firstNonEmpty(plant.Notes, detail.Description)
	plant.ImageURL = firstNonEmpty(plant.ImageURL, detail.Image)
}

func (p *plantService) UpdatePlant(ctx context.Context, update models.PlantUpdate) (models.Plant, error) {
	plant, err := p.plantRepository.UpdatePlant(ctx, update)
	if err != nil {
		return models.Plant{}, fmt.Errorf("error updating plant: %w", err)
	}
	return plant, nil
}

func (p *plantService) DeletePlant(ctx context.Context, userID, plantID int64) error {
	if err := p.plantRepository.DeletePlant(ctx, userID, plantID); err != nil {
		return fmt.Errorf("error deleting plant: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
