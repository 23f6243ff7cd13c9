// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/service"
	"github.com/MKhiriev/plant-pal/internal/store"
	"github.com/MKhiriev/plant-pal/internal/utils"
	"github.com/MKhiriev/plant-pal/internal/validators"
)

const internalErrorMessage = "internal server error"

// errorStatusMap lists the errors that are safe to show to the caller. The
// response message is the matched sentinel's text, never the wrapped chain.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrNoSession:       http.StatusUnauthorized,
	ErrInvalidSession:  http.StatusForbidden,
	ErrRouteNotFound:   http.StatusNotFound,
	ErrTooManyRequests: http.StatusTooManyRequests,

	validators.ErrInvalidEmail:       http.StatusBadRequest,
	validators.ErrInvalidFirstName:   http.StatusBadRequest,
	validators.ErrInvalidLastName:    http.StatusBadRequest,
	validators.ErrInvalidPassword:    http.StatusBadRequest,
	validators.ErrMissingCredentials: http.StatusBadRequest,
	validators.ErrEmptyPlantName:     http.StatusBadRequest,
	validators.ErrInvalidPlantID:     http.StatusBadRequest,
	validators.ErrInvalidSpeciesID:   http.StatusBadRequest,
	validators.ErrInvalidImageURL:    http.StatusBadRequest,
	validators.ErrInvalidUserID:      http.StatusBadRequest,
	validators.ErrEmptyPrompt:        http.StatusBadRequest,
	validators.ErrInvalidChatRole:    http.StatusBadRequest,
	validators.ErrEmptyChatTurn:      http.StatusBadRequest,
	validators.ErrChatHistoryTooLong: http.StatusBadRequest,
	validators.ErrPromptTooLong:      http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrDirectoryNotConfigured:  http.StatusInternalServerError,
	service.ErrSpeciesNotFound:         http.StatusNotFound,
	service.ErrDirectoryRateLimited:    http.StatusTooManyRequests,
	service.ErrDirectoryUnavailable:    http.StatusBadGateway,
	service.ErrAdvisorNotConfigured:    http.StatusServiceUnavailable,
	service.ErrAdvisorUnavailable:      http.StatusBadGateway,
	service.ErrEmptyModelResponse:      http.StatusBadGateway,
	service.ErrInsightsParse:           http.StatusBadGateway,

	store.ErrEmailAlreadyExists:  http.StatusConflict,
	store.ErrNoUserWasFound:      http.StatusNotFound,
	store.ErrPlantNotFound:       http.StatusNotFound,
	store.ErrDatabaseUnavailable: http.StatusServiceUnavailable,
}

// statusFromError returns the status for err and the message to show.
// Unknown errors become a generic 500.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

// writeError logs err and answers with the JSON error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSONError(w, message, status)
}
