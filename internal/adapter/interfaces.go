// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the clients of the two upstream services: the
// Perenual-compatible species directory and the Gemini language model.
//
// Transport failures are mapped to the sentinel errors in errors.go so the
// service layer can match them with [errors.Is] without seeing upstream
// payloads.
package adapter

import (
	"context"

	"github.com/MKhiriev/plant-pal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PlantDirectory looks up species in the third-party plant directory.
type PlantDirectory interface {
	// Configured reports whether an API key is present.
	Configured() bool

	// SearchSpecies returns the directory matches for query, in upstream
	// order. Records without an id are skipped.
	SearchSpecies(ctx context.Context, query string) ([]models.SpeciesSuggestion, error)

	// SpeciesDetails returns the normalized record of one species.
	// Returns [ErrNotFound] or [ErrRateLimited] for the matching upstream
	// statuses.
	SpeciesDetails(ctx context.Context, id int64) (models.SpeciesDetail, error)
}

// LanguageModel sends a single request to the language model.
type LanguageModel interface {
	// Configured reports whether an API key is present.
	Configured() bool

	// Generate returns the first non-empty text of the model reply.
	Generate(ctx context.Context, req models.ModelRequest) (string, error)
}
