// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/plant-pal/internal/utils"
	"github.com/MKhiriev/plant-pal/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var request models.ChatRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	var identity *models.Identity
	if id, ok := utils.GetIdentityFromContext(r.Context()); ok {
		identity = &id
	}

	history, err := h.services.AdvisorService.Chat(r.Context(), identity, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ChatResponse{Success: true, History: history}, http.StatusOK)
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	insights, err := h.services.AdvisorService.Insights(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.InsightsResponse{Success: true, Insights: insights}, http.StatusOK)
}
