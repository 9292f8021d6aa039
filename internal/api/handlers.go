// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/metrics"
	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/models"
	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/recommend"
)

// handlerTimeout bounds one recommendation computation including upstream
// catalog fetches.
const handlerTimeout = 15 * time.Second

// Handler serves the recommendation API endpoints.
type Handler struct {
	engine *recommend.Engine
	logger zerolog.Logger
}

// NewHandler creates an API handler over the engine.
//
//nolint:gocritic // zerolog.Logger is passed by value per its documented usage
func NewHandler(engine *recommend.Engine, logger zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
	}
}

// RecommendRequest is the body of POST /api/v1/recommend.
type RecommendRequest struct {
	UserID         string              `json:"user_id" validate:"required"`
	MovieID        string              `json:"movie_id,omitempty"`
	BookingHistory []recommend.Booking `json:"booking_history,omitempty"`
}

// NewUserRequest is the body of POST /api/v1/recommend/new-user.
type NewUserRequest struct {
	PreferredGenres []string `json:"preferred_genres" validate:"required,min=1"`
	PreferredActors []string `json:"preferred_actors,omitempty"`
}

// GenresResponse is the body of GET /api/v1/genres.
type GenresResponse struct {
	Genres []string `json:"genres"`
}

// Recommend handles POST /api/v1/recommend.
// Produces personalized recommendations from the user's booking history, or
// similar movies when movie_id is set.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	result, err := h.engine.RecommendForUser(ctx, req.UserID, req.BookingHistory, req.MovieID)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}

	duration := time.Since(start)
	metrics.RecordRecommendation(string(result.Type), duration)
	metrics.RecommendationCandidates.Observe(float64(result.Candidates))
	if result.Tier != "" && result.Tier != recommend.TierPrimary {
		metrics.RecordFallback(string(result.Tier))
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: duration.Milliseconds(),
		},
	})
}

// RecommendNewUser handles POST /api/v1/recommend/new-user.
// Produces recommendations from stated preferences for users without any
// booking history.
func (h *Handler) RecommendNewUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req NewUserRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	result, err := h.engine.RecommendForNewUser(ctx, req.PreferredGenres, req.PreferredActors)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}

	duration := time.Since(start)
	metrics.RecordRecommendation(string(result.Type), duration)
	metrics.RecommendationCandidates.Observe(float64(result.Candidates))
	if result.Tier != "" && result.Tier != recommend.TierPrimary {
		metrics.RecordFallback(string(result.Tier))
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: duration.Milliseconds(),
		},
	})
}

// Genres handles GET /api/v1/genres.
func (h *Handler) Genres(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   GenresResponse{Genres: recommend.AvailableGenres()},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]string{
			"status":  "healthy",
			"service": "movie-recommendation",
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// respondEngineError maps engine errors onto HTTP statuses.
func (h *Handler) respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recommend.ErrMissingUserID):
		respondError(w, http.StatusBadRequest, "MISSING_USER_ID", "user_id is required", nil)
	case errors.Is(err, recommend.ErrNoPreferredGenres):
		respondError(w, http.StatusBadRequest, "MISSING_GENRES", "at least one preferred genre is required", nil)
	case errors.Is(err, recommend.ErrMovieNotFound):
		respondError(w, http.StatusNotFound, "MOVIE_NOT_FOUND", "movie not found", nil)
	default:
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to generate recommendations", err)
	}
}

func contextWithTimeout(r *http.Request) (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(r.Context(), handlerTimeout)
}
