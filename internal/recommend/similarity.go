// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import (
	"math"
	"strings"
)

// document builds the text document a movie is vectorized from: overview,
// genres, keywords, cast, and director joined into one string.
func document(movie *Movie) string {
	parts := []string{
		movie.Overview,
		strings.Join(movie.Genres, " "),
		strings.Join(movie.Keywords, " "),
		strings.Join(movie.Cast, " "),
		movie.Director,
	}
	return strings.Join(parts, " ")
}

// Similarity scores each candidate against the target movie. The content
// component is TF-IDF cosine similarity over the target and candidate
// documents. When a profile is given, a preference score is blended in:
// final = Blend.Content*content + Blend.Preference*preference. Without a
// profile the content score stands alone. The returned slice is aligned
// with candidates.
func (c *Config) Similarity(target *Movie, candidates []*Movie, profile *UserProfile) []float64 {
	documents := make([]string, 0, len(candidates)+1)
	documents = append(documents, document(target))
	for _, candidate := range candidates {
		documents = append(documents, document(candidate))
	}

	vectors := tfidfVectors(documents, c.Text.MaxFeatures)
	targetVec := vectors[0]

	scores := make([]float64, len(candidates))
	for i, candidate := range candidates {
		contentScore := cosine(targetVec, vectors[i+1])

		if profile == nil {
			scores[i] = contentScore
			continue
		}

		preferenceScore := c.preferenceScore(profile, candidate)
		scores[i] = contentScore*c.Blend.Content + preferenceScore*c.Blend.Preference
	}

	return scores
}

// preferenceScore combines genre, actor, director, and rating-closeness
// components from the user's profile. Genre and actor occurrence sums are
// divided by total bookings and capped at 1.0.
func (c *Config) preferenceScore(profile *UserProfile, movie *Movie) float64 {
	total := float64(profile.TotalBookings)

	var genreSum int
	for _, genre := range movie.Genres {
		genreSum += profile.Genres[genre]
	}
	genreScore := math.Min(float64(genreSum)/total, 1.0)

	var actorSum int
	for _, actor := range movie.Cast {
		actorSum += profile.Actors[actor]
	}
	actorScore := math.Min(float64(actorSum)/total, 1.0)

	directorScore := float64(profile.Directors[movie.Director]) / total

	ratingDiff := math.Abs(movie.Rating - profile.AvgRating)
	ratingScore := math.Max(0, 1-ratingDiff/10)

	return genreScore*c.Preference.Genre +
		actorScore*c.Preference.Actor +
		directorScore*c.Preference.Director +
		ratingScore*c.Preference.Rating
}

// rawPreferenceScore is the unweighted preference signal used by the
// personalized path: genre and actor occurrence sums over total bookings.
func rawPreferenceScore(profile *UserProfile, movie *Movie) float64 {
	var sum int
	for _, genre := range movie.Genres {
		sum += profile.Genres[genre]
	}
	for _, actor := range movie.Cast {
		sum += profile.Actors[actor]
	}
	return float64(sum) / float64(profile.TotalBookings)
}
