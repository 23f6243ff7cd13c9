// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/plant-pal/internal/config"
	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/mock"
	"github.com/MKhiriev/plant-pal/internal/validators"
	"github.com/MKhiriev/plant-pal/models"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubDirectory is a DirectoryService that replays a list of results.
type stubDirectory struct {
	details []detailResult
	calls   int
}

type detailResult struct {
	detail models.SpeciesDetail
	err    error
}

func (s *stubDirectory) Suggest(context.Context, string) ([]models.SpeciesSuggestion, error) {
	return nil, errors.New("not used")
}

func (s *stubDirectory) Details(context.Context, int64) (models.SpeciesDetail, error) {
	r := s.details[s.calls]
	s.calls++
	return r.detail, r.err
}

func newTestPlantSvc(t *testing.T, directory DirectoryService) (*plantService, *mock.MockPlantRepository, *[]time.Duration) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPlantRepository(ctrl)

	svc := NewPlantService(repo, directory, config.Perenual{RetryDelay: 2 * time.Second}, logger.Nop()).(*plantService)
	slept := &[]time.Duration{}
	svc.newBackoff = func(d time.Duration) retry.Backoff {
		return retry.BackoffFunc(func() (time.Duration, bool) {
			*slept = append(*slept, d)
			return 0, false
		})
	}
	return svc, repo, slept
}

func echoCreate(repo *mock.MockPlantRepository, got *models.Plant) {
	repo.EXPECT().CreatePlant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Plant) (models.Plant, error) {
			p.PlantID = 1
			*got = p
			return p, nil
		},
	)
}

func TestPlantService_AddPlant_Manual(t *testing.T) {
	svc, repo, _ := newTestPlantSvc(t, &stubDirectory{})

	var stored models.Plant
	echoCreate(repo, &stored)

	plant, err := svc.AddPlant(context.Background(), 4, models.AddPlantRequest{
		Name:    "  Kitchen basil ",
		Species: "Ocimum basilicum",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), plant.PlantID)
	assert.Equal(t, int64(4), stored.UserID)
	assert.Equal(t, "Kitchen basil", stored.Name)
	assert.Empty(t, stored.WateringFrequency, "defaults apply only to directory additions")
}

func TestPlantService_AddPlant_FromDirectory(t *testing.T) {
	speciesID := int64(77)
	detail := models.SpeciesDetail{
		ID:             77,
		CommonName:     "Swiss cheese plant",
		ScientificName: "Monstera deliciosa",
		Description:    "Climbing aroid.",
		Image:          "https://img.example/monstera.jpg",
	}

	t.Run("fills empty fields and defaults", func(t *testing.T) {
		svc, repo, _ := newTestPlantSvc(t, &stubDirectory{details: []detailResult{{detail: detail}}})
		var stored models.Plant
		echoCreate(repo, &stored)

		_, err := svc.AddPlant(context.Background(), 1, models.AddPlantRequest{SpeciesID: &speciesID})
		require.NoError(t, err)
		assert.Equal(t, models.Plant{
			PlantID:           1,
			UserID:            1,
			Name:              "Swiss cheese plant",
			Species:           "Monstera deliciosa",
			WateringFrequency: DefaultWateringFrequency,
			Sunlight:          DefaultSunlight,
			Notes:             "Climbing aroid.",
			ImageURL:          "https://img.example/monstera.jpg",
		}, stored)
	})

	t.Run("caller values win", func(t *testing.T) {
		withCare := detail
		withCare.Sunlight = "part shade"
		withCare.WateringFrequency = "Average"
		svc, repo, _ := newTestPlantSvc(t, &stubDirectory{details: []detailResult{{detail: withCare}}})
		var stored models.Plant
		echoCreate(repo, &stored)

		_, err := svc.AddPlant(context.Background(), 1, models.AddPlantRequest{
			SpeciesID: &speciesID,
			Name:      "Monty",
			Sunlight:  "full sun",
		})
		require.NoError(t, err)
		assert.Equal(t, "Monty", stored.Name)
		assert.Equal(t, "full sun", stored.Sunlight)
		assert.Equal(t, "Average", stored.WateringFrequency)
	})

	t.Run("scientific name when common name is missing", func(t *testing.T) {
		onlyLatin := models.SpeciesDetail{ID: 77, ScientificName: "Ficus lyrata"}
		svc, repo, _ := newTestPlantSvc(t, &stubDirectory{details: []detailResult{{detail: onlyLatin}}})
		var stored models.Plant
		echoCreate(repo, &stored)

		_, err := svc.AddPlant(context.Background(), 1, models.AddPlantRequest{SpeciesID: &speciesID})
		require.NoError(t, err)
		assert.Equal(t, "Ficus lyrata", stored.Name)
	})

	t.Run("no name anywhere", func(t *testing.T) {
		svc, _, _ := newTestPlantSvc(t, &stubDirectory{details: []detailResult{{detail: models.SpeciesDetail{ID: 77}}}})

		_, err := svc.AddPlant(context.Background(), 1, models.AddPlantRequest{SpeciesID: &speciesID})
		assert.ErrorIs(t, err, validators.ErrEmptyPlantName)
	})
}

func TestPlantService_AddPlant_RetriesRateLimitOnce(t *testing.T) {
	speciesID := int64(3)

	t.Run("second attempt succeeds", func(t *testing.T) {
		directory := &stubDirectory{details: []detailResult{
			{err: ErrDirectoryRateLimited},
			{detail: models.SpeciesDetail{ID: 3, CommonName: "Aloe"}},
		}}
		svc, repo, slept := newTestPlantSvc(t, directory)
		var stored models.Plant
		echoCreate(repo, &stored)

		_, err := svc.AddPlant(context.Background(), 1, models.AddPlantRequest{SpeciesID: &speciesID})
		require.NoError(t, err)
		assert.Equal(t, 2, directory.calls)
		assert.Equal(t, []time.Duration{2 * time.Second}, *slept)
		assert.Equal(t, "Aloe", stored.Name)
	})

	t.Run("second attempt limited too", func(t *testing.T) {
		directory := &stubDirectory{details: []detailResult{
			{err: ErrDirectoryRateLimited},
			{err: ErrDirectoryRateLimited},
		}}
		svc, _, _ := newTestPlantSvc(t, directory)

		_, err := svc.AddPlant(context.Background(), 1, models.AddPlantRequest{SpeciesID: &speciesID})
		assert.ErrorIs(t, err, ErrDirectoryRateLimited)
		assert.Equal(t, 2, directory.calls)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		directory := &stubDirectory{details: []detailResult{{err: ErrSpeciesNotFound}}}
		svc, _, slept := newTestPlantSvc(t, directory)

		_, err := svc.AddPlant(context.Background(), 1, models.AddPlantRequest{SpeciesID: &speciesID})
		assert.ErrorIs(t, err, ErrSpeciesNotFound)
		assert.Empty(t, *slept)
	})
}

type cancelingDirectory struct {
	stubDirectory
	cancel context.CancelFunc
}

func (c *cancelingDirectory) Details(context.Context, int64) (models.SpeciesDetail, error) {
	c.calls++
	c.cancel()
	return models.SpeciesDetail{}, ErrDirectoryRateLimited
}

func TestPlantService_AddPlant_RetryWaitHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	directory := &cancelingDirectory{cancel: cancel}
	svc := NewPlantService(nil, directory, config.Perenual{RetryDelay: time.Hour}, logger.Nop()).(*plantService)
	speciesID := int64(3)

	_, err := svc.AddPlant(ctx, 1, models.AddPlantRequest{SpeciesID: &speciesID})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, directory.calls)
}

func TestNewPlantService_DefaultRetryDelay(t *testing.T) {
	svc := NewPlantService(nil, &stubDirectory{}, config.Perenual{}, logger.Nop()).(*plantService)
	assert.Equal(t, config.DefaultPerenualRetryDelay, svc.retryDelay)
}
