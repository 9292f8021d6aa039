// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// This package imports no other internal packages. Callers supply data
// access through the DataProvider interface.

// Engine produces movie recommendations from booking history, content
// similarity, and genre/actor preferences. It holds no per-user state
// between requests and is safe for concurrent use.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	provider DataProvider

	// fallbackCatalog substitutes for the remote catalog when it is
	// unavailable. Never mutated after construction.
	fallbackCatalog []Movie
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, provider DataProvider, fallbackCatalog []Movie, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:          cfg,
		logger:          logger.With().Str("component", "recommend").Logger(),
		provider:        provider,
		fallbackCatalog: fallbackCatalog,
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// catalog fetches the movie catalog, substituting the built-in fallback
// catalog when the upstream store is unavailable.
func (e *Engine) catalog(ctx context.Context) []Movie {
	result := e.provider.FetchCatalog(ctx)
	if !result.Available {
		e.logger.Warn().
			Int("fallback_size", len(e.fallbackCatalog)).
			Msg("catalog unavailable, using built-in fallback catalog")
		return e.fallbackCatalog
	}
	return result.Movies
}

// resolveMovie looks a movie up in the provider, falling back to the
// built-in catalog. Returns nil when the movie cannot be found anywhere.
func (e *Engine) resolveMovie(ctx context.Context, id string) *Movie {
	movie, err := e.provider.FetchMovie(ctx, id)
	if err != nil {
		e.logger.Debug().Err(err).Str("movie_id", id).Msg("movie fetch failed")
	}
	if movie != nil {
		return movie
	}
	for i := range e.fallbackCatalog {
		if e.fallbackCatalog[i].ID == id {
			return &e.fallbackCatalog[i]
		}
	}
	return nil
}

// RecommendForUser generates recommendations for a user with booking
// history. With a target movie ID it returns content-similar movies;
// otherwise it scores the catalog against the user's preference profile.
// Users whose history resolves to no known movies get a new_user result
// prompting for preferences.
func (e *Engine) RecommendForUser(ctx context.Context, userID string, bookings []Booking, targetMovieID string) (*RecommendationResult, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	profile := BuildProfile(bookings, func(movieID string) *Movie {
		return e.resolveMovie(ctx, movieID)
	})

	if profile == nil {
		e.logger.Info().Str("user_id", userID).Msg("no usable booking history, prompting for preferences")
		return &RecommendationResult{
			Type:            ResultNewUser,
			Message:         "No booking history found. Please provide preferences.",
			AvailableGenres: AvailableGenres(),
		}, nil
	}

	watched := Watched(bookings)

	if targetMovieID != "" {
		return e.similarMovies(ctx, targetMovieID, profile, watched)
	}
	return e.personalized(ctx, profile, watched)
}

// similarMovies ranks the catalog by blended similarity to the target movie.
func (e *Engine) similarMovies(ctx context.Context, targetMovieID string, profile *UserProfile, watched map[string]struct{}) (*RecommendationResult, error) {
	target := e.resolveMovie(ctx, targetMovieID)
	if target == nil {
		return nil, ErrMovieNotFound
	}

	var candidates []*Movie
	catalog := e.catalog(ctx)
	for i := range catalog {
		movie := &catalog[i]
		if movie.ID == targetMovieID {
			continue
		}
		if _, seen := watched[movie.ID]; seen {
			continue
		}
		candidates = append(candidates, movie)
	}

	scores := e.config.Similarity(target, candidates, profile)

	recs := make([]ScoredRecommendation, 0, len(candidates))
	for i, movie := range candidates {
		score := scores[i]
		recs = append(recs, ScoredRecommendation{
			Movie:            *movie,
			Score:            score,
			Confidence:       NormalizeToPercentage(score),
			Reason:           ConfidenceExplanation(score),
			MatchExplanation: fmt.Sprintf("Similar to %s based on your viewing history", target.Title),
		})
	}

	SortHybrid(recs)
	recs = truncate(recs, e.config.Limits.MaxResults)

	e.logger.Info().
		Str("target_movie_id", targetMovieID).
		Int("candidates", len(candidates)).
		Int("returned", len(recs)).
		Msg("similar movie recommendations generated")

	return &RecommendationResult{
		Type:            ResultSimilarMovies,
		Recommendations: recs,
		Profile:         profile,
		ExcludedWatched: len(watched),
		Tier:            TierPrimary,
		Candidates:      len(candidates),
	}, nil
}

// personalized ranks unwatched catalog movies by the user's raw genre and
// actor preference signal.
func (e *Engine) personalized(ctx context.Context, profile *UserProfile, watched map[string]struct{}) (*RecommendationResult, error) {
	var recs []ScoredRecommendation

	catalog := e.catalog(ctx)
	for i := range catalog {
		movie := &catalog[i]
		if _, seen := watched[movie.ID]; seen {
			continue
		}

		score := rawPreferenceScore(profile, movie)
		recs = append(recs, ScoredRecommendation{
			Movie:            *movie,
			Score:            score,
			Confidence:       NormalizeToPercentage(score),
			Reason:           ConfidenceExplanation(score),
			MatchExplanation: fmt.Sprintf("Matches your interests in %s", strings.Join(firstN(movie.Genres, 2), ", ")),
		})
	}

	scored := len(recs)
	SortHybrid(recs)
	recs = truncate(recs, e.config.Limits.MaxResults)

	e.logger.Info().
		Int("total_bookings", profile.TotalBookings).
		Int("excluded_watched", len(watched)).
		Int("returned", len(recs)).
		Msg("personalized recommendations generated")

	return &RecommendationResult{
		Type:            ResultPersonalized,
		Recommendations: recs,
		Profile:         profile,
		ExcludedWatched: len(watched),
		Tier:            TierPrimary,
		Candidates:      scored,
	}, nil
}

func truncate(recs []ScoredRecommendation, limit int) []ScoredRecommendation {
	if len(recs) > limit {
		return recs[:limit]
	}
	return recs
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
