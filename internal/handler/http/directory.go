// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/plant-pal/internal/utils"
	"github.com/MKhiriev/plant-pal/internal/validators"
	"github.com/MKhiriev/plant-pal/models"
)

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.services.DirectoryService.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuggestionsResponse{Success: true, Data: suggestions}, http.StatusOK)
}

func (h *Handler) speciesDetails(w http.ResponseWriter, r *http.Request) {
	speciesID, err := pathID(r, "id", validators.ErrInvalidSpeciesID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	detail, err := h.services.DirectoryService.Details(r.Context(), speciesID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SpeciesDetailResponse{Success: true, Data: detail}, http.StatusOK)
}
