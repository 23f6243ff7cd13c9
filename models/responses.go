// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse is a success body that carries only a message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UserResponse wraps a user for the auth endpoints.
type UserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// PlantResponse wraps a single plant.
type PlantResponse struct {
	Success bool  `json:"success"`
	Plant   Plant `json:"plant"`
}

// PlantsResponse wraps a user's collection.
type PlantsResponse struct {
	Success bool    `json:"success"`
	Plants  []Plant `json:"plants"`
}

// SuggestionsResponse wraps directory search results.
type SuggestionsResponse struct {
	Success bool                `json:"success"`
	Data    []SpeciesSuggestion `json:"data"`
}

// SpeciesDetailResponse wraps a directory detail record.
type SpeciesDetailResponse struct {
	Success bool          `json:"success"`
	Data    SpeciesDetail `json:"data"`
}

// ChatResponse carries the updated conversation.
type ChatResponse struct {
	Success bool       `json:"success"`
	History []ChatTurn `json:"history"`
}

// InsightsResponse wraps generated insights.
type InsightsResponse struct {
	Success  bool     `json:"success"`
	Insights Insights `json:"insights"`
}

// VersionResponse is returned by the health endpoint.
type VersionResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
