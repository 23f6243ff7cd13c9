// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/models"
)

var plantCreatedAt = time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC)

func newTestPlantRepo(t *testing.T) (PlantRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewPlantRepository(NewDB(db, DialectPostgres, logger.Nop()), logger.Nop()), mock, db
}

func plantRow(rows *sqlmock.Rows, id, userID int64, name string) *sqlmock.Rows {
	return rows.AddRow(id, userID, name, "Monstera deliciosa", "Weekly", "Bright indirect", "", "", plantCreatedAt)
}

func TestCreatePlant_Success(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	plant := models.Plant{UserID: 3, Name: "Monty", Species: "Monstera deliciosa", WateringFrequency: "Weekly", Sunlight: "Bright indirect"}

	mock.ExpectQuery("INSERT INTO plants").
		WithArgs(int64(3), "Monty", "Monstera deliciosa", "Weekly", "Bright indirect", "", "").
		WillReturnRows(plantRow(sqlmock.NewRows(plantColumns), 10, 3, "Monty"))

	created, err := repo.CreatePlant(context.Background(), plant)
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.PlantID)
	assert.Equal(t, int64(3), created.UserID)
	assert.Equal(t, plantCreatedAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePlant_UnknownUser(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO plants").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreatePlant(context.Background(), models.Plant{UserID: 99, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestListPlants(t *testing.T) {
	t.Run("returns rows in order", func(t *testing.T) {
		repo, mock, db := newTestPlantRepo(t)
		defer db.Close()

		rows := sqlmock.NewRows(plantColumns)
		plantRow(rows, 1, 3, "First")
		plantRow(rows, 2, 3, "Second")

		mock.ExpectQuery("SELECT (.+) FROM plants WHERE user_id = \\$1 ORDER BY created_at ASC, plant_id ASC").
			WithArgs(int64(3)).
			WillReturnRows(rows)

		plants, err := repo.ListPlants(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, plants, 2)
		assert.Equal(t, "First", plants[0].Name)
		assert.Equal(t, "Second", plants[1].Name)
	})

	t.Run("empty collection is not nil", func(t *testing.T) {
		repo, mock, db := newTestPlantRepo(t)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM plants").
			WillReturnRows(sqlmock.NewRows(plantColumns))

		plants, err := repo.ListPlants(context.Background(), 3)
		require.NoError(t, err)
		assert.NotNil(t, plants)
		assert.Empty(t, plants)
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock, db := newTestPlantRepo(t)
		defer db.Close()

		rows := plantRow(sqlmock.NewRows(plantColumns), 1, 3, "First").
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery("SELECT (.+) FROM plants").WillReturnRows(rows)

		_, err := repo.ListPlants(context.Background(), 3)
		assert.ErrorIs(t, err, ErrScanningRows)
	})

	t.Run("transient error", func(t *testing.T) {
		repo, mock, db := newTestPlantRepo(t)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM plants").
			WillReturnError(pgError(pgerrcode.CannotConnectNow))

		_, err := repo.ListPlants(context.Background(), 3)
		assert.ErrorIs(t, err, ErrDatabaseUnavailable)
	})
}

func TestGetPlant_NotFound(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM plants WHERE plant_id = \\$1 AND user_id = \\$2").
		WithArgs(int64(10), int64(4)).
		WillReturnRows(sqlmock.NewRows(plantColumns))

	_, err := repo.GetPlant(context.Background(), 4, 10)
	assert.ErrorIs(t, err, ErrPlantNotFound)
}

func TestUpdatePlant(t *testing.T) {
	name := "Monty II"

	t.Run("partial update", func(t *testing.T) {
		repo, mock, db := newTestPlantRepo(t)
		defer db.Close()

		mock.ExpectQuery("UPDATE plants SET plant_name = \\$1 WHERE plant_id = \\$2 AND user_id = \\$3").
			WithArgs(name, int64(10), int64(3)).
			WillReturnRows(plantRow(sqlmock.NewRows(plantColumns), 10, 3, name))

		plant, err := repo.UpdatePlant(context.Background(), models.PlantUpdate{PlantID: 10, UserID: 3, Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, plant.Name)
		assert.Equal(t, "Monstera deliciosa", plant.Species)
	})

	t.Run("plant of another user", func(t *testing.T) {
		repo, mock, db := newTestPlantRepo(t)
		defer db.Close()

		mock.ExpectQuery("UPDATE plants").
			WithArgs(name, int64(10), int64(4)).
			WillReturnRows(sqlmock.NewRows(plantColumns))

		_, err := repo.UpdatePlant(context.Background(), models.PlantUpdate{PlantID: 10, UserID: 4, Name: &name})
		assert.ErrorIs(t, err, ErrPlantNotFound)
	})

	t.Run("empty update reads current row", func(t *testing.T) {
		repo, mock, db := newTestPlantRepo(t)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM plants").
			WithArgs(int64(10), int64(3)).
			WillReturnRows(plantRow(sqlmock.NewRows(plantColumns), 10, 3, "Monty"))

		plant, err := repo.UpdatePlant(context.Background(), models.PlantUpdate{PlantID: 10, UserID: 3})
		require.NoError(t, err)
		assert.Equal(t, "Monty", plant.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeletePlant(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM plants WHERE plant_id = \\$1 AND user_id = \\$2").
		WithArgs(int64(10), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM plants").
		WithArgs(int64(10), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeletePlant(context.Background(), 3, 10))
	assert.ErrorIs(t, repo.DeletePlant(context.Background(), 3, 10), ErrPlantNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePlant_DriverError(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM plants").
		WillReturnError(errors.New("boom"))

	err := repo.DeletePlant(context.Background(), 3, 10)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPlantNotFound)
}
