// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/utils"
	"github.com/MKhiriev/plant-pal/models"
)

// auth is an HTTP middleware that requires a session cookie.
//
// The request is rejected with 401 when the cookie is absent and with 403
// when its token does not verify. On success the caller's [models.Identity]
// is stored in the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.session.cookieName)
		if err != nil || cookie.Value == "" {
			log.Debug().Msg("no session cookie")
			writeError(w, r, ErrNoSession)
			return
		}

		identity, err := h.identityFromToken(r.Context(), cookie.Value)
		if err != nil {
			log.Err(err).Msg("session token rejected")
			writeError(w, r, ErrInvalidSession)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

// optionalAuth attaches the identity when a valid session cookie is present
// and passes every request through.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.session.cookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := h.identityFromToken(r.Context(), cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

func (h *Handler) identityFromToken(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Identity{}, err
	}
	return token.Identity()
}
