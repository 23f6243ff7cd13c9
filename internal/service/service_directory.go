// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/plant-pal/internal/adapter"
	"github.com/MKhiriev/plant-pal/internal/cache"
	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/models"
)

const (
	minSuggestQueryLength = 2
	maxSuggestions        = 8
)

// directoryService fronts the plant directory with two independent caches:
// search results keyed by the lowercased query and details keyed by species
// id. A lost update between concurrent misses only costs a duplicate fetch.
type directoryService struct {
	directory   adapter.PlantDirectory
	suggestions cache.Cache[string, []models.SpeciesSuggestion]
	details     cache.Cache[int64, models.SpeciesDetail]

	logger *logger.Logger
}

// NewDirectoryService constructs a DirectoryService.
func NewDirectoryService(
	directory adapter.PlantDirectory,
	suggestions cache.Cache[string, []models.SpeciesSuggestion],
	details cache.Cache[int64, models.SpeciesDetail],
	logger *logger.Logger,
) DirectoryService {
	return &directoryService{
		directory:   directory,
		suggestions: suggestions,
		details:     details,
		logger:      logger,
	}
}

// Suggest returns at most eight matches for query. Queries shorter than two
// characters return an empty list without an upstream call.
func (d *directoryService) Suggest(ctx context.Context, query string) ([]models.SpeciesSuggestion, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(key) < minSuggestQueryLength {
		return []models.SpeciesSuggestion{}, nil
	}

	if cached, ok := d.suggestions.Get(key); ok {
		return slices.Clone(cached), nil
	}

	found, err := d.directory.SearchSpecies(ctx, key)
	if err != nil {
		return nil, directoryError(err)
	}
	if found == nil {
		found = []models.SpeciesSuggestion{}
	}
	if len(found) > maxSuggestions {
		found = found[:maxSuggestions]
	}

	d.suggestions.Put(key, slices.Clone(found))
	return found, nil
}

// Details returns the normalized record of one species.
func (d *directoryService) Details(ctx context.Context, speciesID int64) (models.SpeciesDetail, error) {
	if cached, ok := d.details.Get(speciesID); ok {
		return cached, nil
	}

	detail, err := d.directory.SpeciesDetails(ctx, speciesID)
	if err != nil {
		return models.SpeciesDetail{}, directoryError(err)
	}

	d.details.Put(speciesID, detail)
	return detail, nil
}

func directoryError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrMissingCredential):
		return ErrDirectoryNotConfigured
	case errors.Is(err, adapter.ErrNotFound):
		return ErrSpeciesNotFound
	case errors.Is(err, adapter.ErrRateLimited):
		return ErrDirectoryRateLimited
	default:
		return fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}
}
