// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/utils"
	"github.com/MKhiriev/plant-pal/internal/validators"
	"github.com/MKhiriev/plant-pal/models"
)

func (h *Handler) listPlants(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	plants, err := h.services.PlantService.ListPlants(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if plants == nil {
		plants = []models.Plant{}
	}

	utils.WriteJSON(w, models.PlantsResponse{Success: true, Plants: plants}, http.StatusOK)
}

func (h *Handler) addPlant(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	var request models.AddPlantRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	plant, err := h.services.PlantService.AddPlant(r.Context(), userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("plant_id", plant.PlantID).Int64("user_id", userID).Msg("plant added")
	utils.WriteJSON(w, models.PlantResponse{Success: true, Plant: plant}, http.StatusCreated)
}

func (h *Handler) updatePlant(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	plantID, err := pathID(r, "id", validators.ErrInvalidPlantID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.PlantUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.PlantID = plantID
	update.UserID = userID

	plant, err := h.services.PlantService.UpdatePlant(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PlantResponse{Success: true, Plant: plant}, http.StatusOK)
}

func (h *Handler) deletePlant(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	plantID, err := pathID(r, "id", validators.ErrInvalidPlantID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PlantService.DeletePlant(r.Context(), userID, plantID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("plant_id", plantID).Int64("user_id", userID).Msg("plant deleted")
	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "Plant deleted"}, http.StatusOK)
}
