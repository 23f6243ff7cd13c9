// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/models"
)

type plantRepository struct {
	*DB
	logger *logger.Logger
}

// NewPlantRepository constructs a [PlantRepository] backed by db.
func NewPlantRepository(db *DB, logger *logger.Logger) PlantRepository {
	logger.Debug().Msg("creating plant repository")
	return &plantRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePlant inserts plant and returns the stored row. A plant for an
// unknown user is [ErrNoUserWasFound].
func (p *plantRepository) CreatePlant(ctx context.Context, plant models.Plant) (models.Plant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePlantQuery(p.builder(), plant)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPlant(p.QueryRowContext(ctx, query, args...))
	if err != nil {
		if p.isForeignKeyViolation(err) {
			return models.Plant{}, ErrNoUserWasFound
		}
		log.Err(err).
			Str("func", "plantRepository.CreatePlant").
			Int64("user_id", plant.UserID).
			Msg("error inserting plant")
		return models.Plant{}, p.wrapError(err)
	}

	return created, nil
}

// ListPlants returns the user's plants, oldest first. An empty collection
// is an empty, non-nil slice.
func (p *plantRepository) ListPlants(ctx context.Context, userID int64) ([]models.Plant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPlantsQuery(p.builder(), userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "plantRepository.ListPlants").
			Int64("user_id", userID).
			Msg("failed to execute query for listing plants")
		return nil, p.wrapError(err)
	}
	defer rows.Close()

	plants := make([]models.Plant, 0, 16)
	for rows.Next() {
		var plant models.Plant
		if err = rows.Scan(plantFields(&plant)...); err != nil {
			log.Err(err).
				Str("func", "plantRepository.ListPlants").
				Int64("user_id", userID).
				Msg("failed to scan plant row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		plants = append(plants, plant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return plants, nil
}

// GetPlant returns one plant of the user.
func (p *plantRepository) GetPlant(ctx context.Context, userID, plantID int64) (models.Plant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPlantQuery(p.builder(), userID, plantID)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	plant, err := scanPlant(p.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Plant{}, ErrPlantNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "plantRepository.GetPlant").
			Int64("plant_id", plantID).
			Msg("error selecting plant")
		return models.Plant{}, p.wrapError(err)
	}

	return plant, nil
}

// UpdatePlant writes the non-nil fields of update and returns the stored
// row. An update without fields returns the current row unchanged.
func (p *plantRepository) UpdatePlant(ctx context.Context, update models.PlantUpdate) (models.Plant, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return p.GetPlant(ctx, update.UserID, update.PlantID)
	}

	query, args, err := buildUpdatePlantQuery(p.builder(), update)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	plant, err := scanPlant(p.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Plant{}, ErrPlantNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "plantRepository.UpdatePlant").
			Int64("plant_id", update.PlantID).
			Msg("error updating plant")
		return models.Plant{}, p.wrapError(err)
	}

	return plant, nil
}

// DeletePlant removes one plant of the user. Zero affected rows is
// [ErrPlantNotFound].
func (p *plantRepository) DeletePlant(ctx context.Context, userID, plantID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePlantQuery(p.builder(), userID, plantID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "plantRepository.DeletePlant").
			Int64("plant_id", plantID).
			Msg("error deleting plant")
		return p.wrapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPlantNotFound
	}

	return nil
}

func plantFields(plant *models.Plant) []any {
	return []any{
		&plant.PlantID,
		&plant.UserID,
		&plant.Name,
		&plant.Species,
		&plant.WateringFrequency,
		&plant.Sunlight,
		&plant.Notes,
		&plant.ImageURL,
		&plant.CreatedAt,
	}
}

func scanPlant(row *sql.Row) (models.Plant, error) {
	var plant models.Plant
	if err := row.Scan(plantFields(&plant)...); err != nil {
		return models.Plant{}, err
	}
	return plant, nil
}
