// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the chi router with the full middleware stack and all
// API routes.
func NewRouter(handler *Handler, mw *MiddlewareConfig) http.Handler {
	if mw == nil {
		mw = DefaultMiddlewareConfig()
	}

	r := chi.NewRouter()

	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.CORS())
	r.Use(Metrics())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.RateLimit())

		r.Post("/recommend", handler.Recommend)
		r.Post("/recommend/new-user", handler.RecommendNewUser)
		r.Get("/genres", handler.Genres)
		r.Get("/health", handler.Health)
	})

	// Prometheus scrape endpoint, outside the rate-limited API group.
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
