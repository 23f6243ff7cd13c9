// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SpeciesSuggestion is a single entry of a directory search.
type SpeciesSuggestion struct {
	ID             int64  `json:"id"`
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name"`
}

// SpeciesDetail is the flattened directory record for one species.
// Fields the upstream does not provide are left empty.
type SpeciesDetail struct {
	ID                int64  `json:"id"`
	CommonName        string `json:"common_name"`
	ScientificName    string `json:"scientific_name"`
	Sunlight          string `json:"sunlight"`
	WateringFrequency string `json:"watering_frequency"`
	Description       string `json:"description"`
	Image             string `json:"image"`
}
