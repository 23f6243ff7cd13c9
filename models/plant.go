// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Plant is a single entry of a user's collection.
type Plant struct {
	// PlantID is the unique identifier of the plant record.
	PlantID int64 `json:"id"`

	// UserID is the owner. Plants are never shared between users.
	UserID int64 `json:"user_id"`

	Name              string `json:"name"`
	Species           string `json:"species"`
	WateringFrequency string `json:"watering_frequency"`
	Sunlight          string `json:"sunlight"`
	Notes             string `json:"notes"`
	ImageURL          string `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Plant model.
func (p Plant) TableName() string {
	return "plants"
}

// AddPlantRequest is the body of POST /api/user/plants.
//
// When SpeciesID is set the missing fields are filled from the plant
// directory before the record is stored.
type AddPlantRequest struct {
	SpeciesID         *int64 `json:"species_id,omitempty"`
	Name              string `json:"name"`
	Species           string `json:"species"`
	WateringFrequency string `json:"watering_frequency"`
	Sunlight          string `json:"sunlight"`
	Notes             string `json:"notes"`
	ImageURL          string `json:"image_url"`
}

// PlantUpdate is a partial update of a plant. Only non-nil fields are
// written; the rest keep their stored value.
type PlantUpdate struct {
	// PlantID and UserID select the record and are never updated.
	PlantID int64 `json:"-"`
	UserID  int64 `json:"-"`

	Name              *string `json:"name,omitempty"`
	Species           *string `json:"species,omitempty"`
	WateringFrequency *string `json:"watering_frequency,omitempty"`
	Sunlight          *string `json:"sunlight,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	ImageURL          *string `json:"image_url,omitempty"`
}

// IsEmpty reports whether the update carries no field changes.
func (u PlantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Species == nil && u.WateringFrequency == nil &&
		u.Sunlight == nil && u.Notes == nil && u.ImageURL == nil
}
