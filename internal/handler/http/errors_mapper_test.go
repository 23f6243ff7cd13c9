// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/plant-pal/internal/service"
	"github.com/MKhiriev/plant-pal/internal/store"
	"github.com/MKhiriev/plant-pal/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", fmt.Errorf("error during plant validation: %w", validators.ErrEmptyPlantName), http.StatusBadRequest, "plant name is required"},
		{"conflict", fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), http.StatusConflict, "email already exists"},
		{"not found", fmt.Errorf("error deleting plant: %w", store.ErrPlantNotFound), http.StatusNotFound, store.ErrPlantNotFound.Error()},
		{"rate limited", service.ErrDirectoryRateLimited, http.StatusTooManyRequests, service.ErrDirectoryRateLimited.Error()},
		{"upstream hides details", fmt.Errorf("%w: http 500 from https://perenual.com/api?key=abc", service.ErrDirectoryUnavailable), http.StatusBadGateway, service.ErrDirectoryUnavailable.Error()},
		{"advisor key", service.ErrAdvisorNotConfigured, http.StatusServiceUnavailable, service.ErrAdvisorNotConfigured.Error()},
		{"directory key", service.ErrDirectoryNotConfigured, http.StatusInternalServerError, service.ErrDirectoryNotConfigured.Error()},
		{"database down", fmt.Errorf("%w: dial tcp", store.ErrDatabaseUnavailable), http.StatusServiceUnavailable, store.ErrDatabaseUnavailable.Error()},
		{"unknown", errors.New("pq: relation plants does not exist"), http.StatusInternalServerError, internalErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user/plants", nil)

	writeError(rec, req, errors.New("secret internals"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"internal server error"}`, rec.Body.String())
}
