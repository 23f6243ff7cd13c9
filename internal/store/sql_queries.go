// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/plant-pal/models"
)

const (
	usersTable  = "users"
	plantsTable = "plants"
)

var (
	userColumns = []string{
		"id",
		"email",
		"password_hash",
		"first_name",
		"last_name",
		"last_login",
	}

	plantColumns = []string{
		"plant_id",
		"user_id",
		"plant_name",
		"species",
		"watering_frequency",
		"sunlight",
		"notes",
		"image_url",
		"created_at",
	}

	errEmptyUpdate = errors.New("update has no fields")
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password_hash", "first_name", "last_name").
		Values(user.Email, user.PasswordHash, user.FirstName, user.LastName).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildUpdateLastLoginQuery(b sq.StatementBuilderType, userID int64, at time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("last_login", at).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildCreatePlantQuery(b sq.StatementBuilderType, plant models.Plant) (string, []any, error) {
	return b.Insert(plantsTable).
		Columns("user_id", "plant_name", "species", "watering_frequency", "sunlight", "notes", "image_url").
		Values(plant.UserID, plant.Name, plant.Species, plant.WateringFrequency, plant.Sunlight, plant.Notes, plant.ImageURL).
		Suffix(returning(plantColumns)).
		ToSql()
}

func buildListPlantsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(plantColumns...).
		From(plantsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "plant_id ASC").
		ToSql()
}

func buildGetPlantQuery(b sq.StatementBuilderType, userID, plantID int64) (string, []any, error) {
	return b.Select(plantColumns...).
		From(plantsTable).
		Where(sq.Eq{"plant_id": plantID, "user_id": userID}).
		ToSql()
}

// buildUpdatePlantQuery writes only the non-nil fields of update. The owner
// is part of the WHERE clause, so a foreign plant matches no row.
func buildUpdatePlantQuery(b sq.StatementBuilderType, update models.PlantUpdate) (string, []any, error) {
	set := sq.Eq{}
	if update.Name != nil {
		set["plant_name"] = *update.Name
	}
	if update.Species != nil {
		set["species"] = *update.Species
	}
	if update.WateringFrequency != nil {
		set["watering_frequency"] = *update.WateringFrequency
	}
	if update.Sunlight != nil {
		set["sunlight"] = *update.Sunlight
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}

	if len(set) == 0 {
		return "", nil, errEmptyUpdate
	}

	return b.Update(plantsTable).
		SetMap(set).
		Where(sq.Eq{"plant_id": update.PlantID, "user_id": update.UserID}).
		Suffix(returning(plantColumns)).
		ToSql()
}

func buildDeletePlantQuery(b sq.StatementBuilderType, userID, plantID int64) (string, []any, error) {
	return b.Delete(plantsTable).
		Where(sq.Eq{"plant_id": plantID, "user_id": userID}).
		ToSql()
}
