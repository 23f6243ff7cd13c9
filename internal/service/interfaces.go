// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/plant-pal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PlantService manages the plant collections. Every method is scoped to
// one owner; a plant of another user behaves as if it did not exist.
type PlantService interface {
	ListPlants(ctx context.Context, userID int64) ([]models.Plant, error)
	AddPlant(ctx context.Context, userID int64, request models.AddPlantRequest) (models.Plant, error)
	UpdatePlant(ctx context.Context, update models.PlantUpdate) (models.Plant, error)
	DeletePlant(ctx context.Context, userID, plantID int64) error
}

// DirectoryService answers species lookups from the cache or the plant
// directory.
type DirectoryService interface {
	Suggest(ctx context.Context, query string) ([]models.SpeciesSuggestion, error)
	Details(ctx context.Context, speciesID int64) (models.SpeciesDetail, error)
}

// AdvisorService talks to the language model on behalf of a user.
type AdvisorService interface {
	// Chat answers prompt in the context of history. A non-nil identity
	// adds the caller's plant collection to the model context.
	Chat(ctx context.Context, identity *models.Identity, request models.ChatRequest) ([]models.ChatTurn, error)

	// Insights summarizes the caller's collection.
	Insights(ctx context.Context, userID int64) (models.Insights, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
