// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

// BuildProfile aggregates a user's bookings into a preference profile.
// Each booking's movie is resolved through the given function; bookings
// whose movies do not resolve are skipped. Returns nil when no booking
// resolves, in which case the caller treats the user as new.
func BuildProfile(bookings []Booking, resolve func(movieID string) *Movie) *UserProfile {
	var movies []*Movie
	for _, booking := range bookings {
		if booking.MovieID == "" {
			continue
		}
		if movie := resolve(booking.MovieID); movie != nil {
			movies = append(movies, movie)
		}
	}

	if len(movies) == 0 {
		return nil
	}

	profile := &UserProfile{
		Genres:        make(map[string]int),
		Actors:        make(map[string]int),
		Directors:     make(map[string]int),
		TotalBookings: len(movies),
	}

	for _, movie := range movies {
		for _, genre := range movie.Genres {
			profile.Genres[genre]++
		}
		for _, actor := range movie.Cast {
			profile.Actors[actor]++
		}
		if movie.Director != "" {
			profile.Directors[movie.Director]++
		}
		profile.AvgRating += movie.Rating
		profile.AvgRuntime += float64(movie.Runtime)
	}

	profile.AvgRating /= float64(len(movies))
	profile.AvgRuntime /= float64(len(movies))

	return profile
}

// Watched returns the set of movie IDs appearing in the booking history.
func Watched(bookings []Booking) map[string]struct{} {
	watched := make(map[string]struct{}, len(bookings))
	for _, booking := range bookings {
		if booking.MovieID != "" {
			watched[booking.MovieID] = struct{}{}
		}
	}
	return watched
}
