// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import (
	"fmt"
	"strings"
)

// availableGenres is the fixed TMDB genre vocabulary offered to new users.
var availableGenres = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary",
	"Drama", "Family", "Fantasy", "History", "Horror", "Music", "Mystery",
	"Romance", "Science Fiction", "TV Movie", "Thriller", "War", "Western",
}

// genreAffinity maps each genre to the genres considered similar for fuzzy
// matching. "Sci-Fi" and "Science Fiction" are alternative names for the
// same genre and carry identical affinity sets.
var genreAffinity = map[string][]string{
	"Action":          {"Adventure", "Thriller", "Crime", "War"},
	"Adventure":       {"Action", "Fantasy", "Thriller"},
	"Animation":       {"Family", "Comedy", "Fantasy"},
	"Comedy":          {"Animation", "Family", "Romance"},
	"Crime":           {"Action", "Thriller", "Mystery", "Drama"},
	"Documentary":     {"History", "Drama"},
	"Drama":           {"Romance", "Crime", "History", "War"},
	"Family":          {"Animation", "Comedy", "Adventure"},
	"Fantasy":         {"Adventure", "Animation", "Sci-Fi"},
	"History":         {"Drama", "War", "Documentary"},
	"Horror":          {"Thriller", "Mystery"},
	"Music":           {"Drama", "Comedy"},
	"Mystery":         {"Thriller", "Crime", "Horror"},
	"Romance":         {"Drama", "Comedy"},
	"Science Fiction": {"Fantasy", "Action", "Adventure", "Thriller"},
	"Sci-Fi":          {"Fantasy", "Action", "Adventure", "Thriller"},
	"Thriller":        {"Action", "Crime", "Mystery", "Horror"},
	"War":             {"Action", "Drama", "History"},
	"Western":         {"Action", "Adventure", "Drama"},
}

// AvailableGenres returns the fixed genre list for new-user prompts.
func AvailableGenres() []string {
	genres := make([]string, len(availableGenres))
	copy(genres, availableGenres)
	return genres
}

// sciFiAlias reports whether a and b are the two spellings of the
// science fiction genre.
func sciFiAlias(a, b string) bool {
	return (a == "Sci-Fi" && b == "Science Fiction") ||
		(a == "Science Fiction" && b == "Sci-Fi")
}

// MatchGenres fuzzy-matches the user's genres against a movie's genres.
// Each user genre contributes its best match: 1.0 for an exact
// (case-insensitive or alias) match, 0.7 for an affinity match. The final
// score is the sum of best matches divided by the number of user genres.
func MatchGenres(userGenres, movieGenres []string) GenreMatch {
	if len(userGenres) == 0 || len(movieGenres) == 0 {
		return GenreMatch{Explanation: "No genres to match"}
	}

	var (
		totalScore   float64
		matched      []string
		explanations []string
	)

	for _, userGenre := range userGenres {
		var (
			bestScore float64
			bestGenre string
			matchType string
		)

		for _, movieGenre := range movieGenres {
			if strings.EqualFold(userGenre, movieGenre) || sciFiAlias(userGenre, movieGenre) {
				bestScore = 1.0
				bestGenre = movieGenre
				matchType = "exact"
				break
			}
		}

		// No exact match: check the affinity set. The first similar movie
		// genre in slice order wins among equals.
		if bestScore == 0 {
			if similar, ok := genreAffinity[userGenre]; ok {
				for _, movieGenre := range movieGenres {
					if containsString(similar, movieGenre) {
						bestScore = 0.7
						bestGenre = movieGenre
						matchType = "similar"
						break
					}
				}
			}
		}

		if bestScore > 0 {
			totalScore += bestScore
			matched = append(matched, bestGenre)
			explanations = append(explanations, fmt.Sprintf("%s -> %s (%s)", userGenre, bestGenre, matchType))
		}
	}

	explanation := "No genre matches found"
	if len(explanations) > 0 {
		explanation = strings.Join(explanations, "; ")
	}

	return GenreMatch{
		Score:       totalScore / float64(len(userGenres)),
		Matched:     matched,
		Explanation: explanation,
	}
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
