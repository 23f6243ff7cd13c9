// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/plant-pal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with its assigned id.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail yields ErrNoUserWasFound when nobody owns email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID yields ErrNoUserWasFound for unknown ids.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateLastLogin stamps the user's last_login column.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
}

// PlantRepository persists plant collections. Every method that addresses a
// single plant matches on both plant id and owner, so a foreign plant is
// indistinguishable from a missing one.
type PlantRepository interface {
	CreatePlant(ctx context.Context, plant models.Plant) (models.Plant, error)
	ListPlants(ctx context.Context, userID int64) ([]models.Plant, error)
	GetPlant(ctx context.Context, userID, plantID int64) (models.Plant, error)
	UpdatePlant(ctx context.Context, update models.PlantUpdate) (models.Plant, error)
	DeletePlant(ctx context.Context, userID, plantID int64) error
}
