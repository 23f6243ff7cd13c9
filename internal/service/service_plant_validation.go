// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/plant-pal/internal/validators"
	"github.com/MKhiriev/plant-pal/models"
)

// PlantServiceWrapper defines middleware composition for PlantService.
// Implementations wrap an existing PlantService to add behavior such as
// validation.
type PlantServiceWrapper interface {
	Wrap(PlantService) PlantService
}

// PlantValidationService validates and sanitizes input before it reaches the
// wrapped PlantService.
type PlantValidationService struct {
	inner     PlantService
	validator validators.Validator
	sanitizer *validators.Sanitizer
}

func NewPlantValidationService() PlantServiceWrapper {
	return &PlantValidationService{
		validator: validators.NewPlantValidator(),
		sanitizer: validators.NewSanitizer(),
	}
}

func (v *PlantValidationService) ListPlants(ctx context.Context, userID int64) ([]models.Plant, error) {
	if userID <= 0 {
		return nil, validators.ErrInvalidUserID
	}
	return v.inner.ListPlants(ctx, userID)
}

// AddPlant checks the request, and without a species id also the name: a
// manual entry has nothing to fall back on.
func (v *PlantValidationService) AddPlant(ctx context.Context, userID int64, request models.AddPlantRequest) (models.Plant, error) {
	if userID <= 0 {
		return models.Plant{}, validators.ErrInvalidUserID
	}

	fields := []string{validators.FieldSpeciesID, validators.FieldImageURL}
	if request.SpeciesID == nil {
		fields = append(fields, validators.FieldName)
	}

	v.sanitizer.AddRequest(&request)

	if err := v.validator.Validate(ctx, request, fields...); err != nil {
		return models.Plant{}, fmt.Errorf("error during plant validation before saving: %w", err)
	}

	return v.inner.AddPlant(ctx, userID, request)
}

func (v *PlantValidationService) UpdatePlant(ctx context.Context, update models.PlantUpdate) (models.Plant, error) {
	v.sanitizer.Update(&update)

	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Plant{}, fmt.Errorf("error during plant update validation: %w", err)
	}

	return v.inner.UpdatePlant(ctx, update)
}

func (v *PlantValidationService) DeletePlant(ctx context.Context, userID, plantID int64) error {
	if userID <= 0 {
		return validators.ErrInvalidUserID
	}
	if plantID <= 0 {
		return validators.ErrInvalidPlantID
	}
	return v.inner.DeletePlant(ctx, userID, plantID)
}

func (v *PlantValidationService) Wrap(wrapped PlantService) PlantService {
	v.inner = wrapped
	return v
}
