// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import "errors"

var (
	// ErrMissingUserID is returned when a recommendation request has no user ID.
	ErrMissingUserID = errors.New("user_id is required")

	// ErrNoPreferredGenres is returned when a new-user request has no genres.
	ErrNoPreferredGenres = errors.New("at least one preferred genre is required")

	// ErrMovieNotFound is returned when a target movie does not resolve.
	ErrMovieNotFound = errors.New("movie not found")
)
