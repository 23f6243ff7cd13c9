// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/plant-pal/models"
)

const (
	FieldPlantID   = "plant_id"
	FieldUserID    = "user_id"
	FieldName      = "name"
	FieldSpeciesID = "species_id"
	FieldImageURL  = "image_url"
)

// PlantValidator checks plants before they are stored and partial updates
// before they are applied.
type PlantValidator struct{}

func NewPlantValidator() Validator {
	return &PlantValidator{}
}

func (v *PlantValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Plant:
		return v.validatePlant(value, fields...)
	case *models.Plant:
		return v.validatePlant(*value, fields...)

	case models.AddPlantRequest:
		return v.validateAddPlantRequest(value, fields...)
	case *models.AddPlantRequest:
		return v.validateAddPlantRequest(*value, fields...)

	case models.PlantUpdate:
		return v.validatePlantUpdate(value, fields...)
	case *models.PlantUpdate:
		return v.validatePlantUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PlantValidator) validatePlant(plant models.Plant, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldImageURL}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if plant.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if strings.TrimSpace(plant.Name) == "" {
				return ErrEmptyPlantName
			}
		case FieldImageURL:
			if !validImageURL(plant.ImageURL) {
				return ErrInvalidImageURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAddPlantRequest checks the request before the directory fill.
// The name may still be empty here: it is checked on the final plant.
func (v *PlantValidator) validateAddPlantRequest(request models.AddPlantRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSpeciesID, FieldImageURL}
	}

	for _, f := range fields {
		switch f {
		case FieldSpeciesID:
			if request.SpeciesID != nil && *request.SpeciesID <= 0 {
				return ErrInvalidSpeciesID
			}
		case FieldName:
			if strings.TrimSpace(request.Name) == "" {
				return ErrEmptyPlantName
			}
		case FieldImageURL:
			if !validImageURL(request.ImageURL) {
				return ErrInvalidImageURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PlantValidator) validatePlantUpdate(update models.PlantUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlantID, FieldUserID, FieldName, FieldImageURL}
	}

	for _, f := range fields {
		switch f {
		case FieldPlantID:
			if update.PlantID <= 0 {
				return ErrInvalidPlantID
			}
		case FieldUserID:
			if update.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
				return ErrEmptyPlantName
			}
		case FieldImageURL:
			if update.ImageURL != nil && !validImageURL(*update.ImageURL) {
				return ErrInvalidImageURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validImageURL accepts an empty value or an absolute http(s) URL.
func validImageURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
