// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/MKhiriev/plant-pal/models"
)

// Sanitizer strips every HTML element from free text. The result is plain
// text with entities decoded; the client escapes it when rendering.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text sanitizes s and trims surrounding whitespace.
func (s *Sanitizer) Text(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}

// AddRequest sanitizes the free-text fields of request in place. ImageURL
// is validated, not sanitized.
func (s *Sanitizer) AddRequest(request *models.AddPlantRequest) {
	for _, field := range []*string{&request.Name, &request.Species, &request.WateringFrequency, &request.Sunlight, &request.Notes} {
		*field = s.Text(*field)
	}
	request.ImageURL = strings.TrimSpace(request.ImageURL)
}

// Update sanitizes the set fields of update in place.
func (s *Sanitizer) Update(update *models.PlantUpdate) {
	for _, field := range []*string{update.Name, update.Species, update.WateringFrequency, update.Sunlight, update.Notes} {
		if field != nil {
			*field = s.Text(*field)
		}
	}
	if update.ImageURL != nil {
		*update.ImageURL = strings.TrimSpace(*update.ImageURL)
	}
}
