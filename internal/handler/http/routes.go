// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	if h.metricsHandler != nil {
		router.Handle("/metrics", h.metricsHandler)
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/health", h.health)
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/auth/logout", h.logout)
	})

	// directory lookups
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.rateLimit)

		r.Get("/api/plants/suggest", h.suggest)
		r.Get("/api/plants/details/{id}", h.speciesDetails)
	})

	// chat works with and without a session
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.rateLimit)
		r.Use(h.optionalAuth)

		r.Post("/api/ai/chat", h.chat)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Get("/api/user/plants", h.listPlants)
		r.Post("/api/user/plants", h.addPlant)
		r.Put("/api/user/plants/{id}", h.updatePlant)
		r.Delete("/api/user/plants/{id}", h.deletePlant)

		r.With(h.rateLimit).Get("/api/ai/insights", h.insights)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
