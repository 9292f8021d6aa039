// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import (
	"fmt"
	"math"
	"sort"
)

// SortHybrid stably sorts recommendations descending by score, with
// popularity and vote average as tiebreakers.
func SortHybrid(recs []ScoredRecommendation) {
	sort.SliceStable(recs, func(a, b int) bool {
		if recs[a].Score != recs[b].Score {
			return recs[a].Score > recs[b].Score
		}
		if recs[a].Popularity != recs[b].Popularity {
			return recs[a].Popularity > recs[b].Popularity
		}
		return recs[a].Rating > recs[b].Rating
	})
}

// NormalizeToPercentage clamps a score to [0, 1] and converts it to a
// percentage rounded to one decimal place.
func NormalizeToPercentage(score float64) float64 {
	normalized := math.Max(0, math.Min(1, score))
	return math.Round(normalized*1000) / 10
}

// ConfidenceExplanation renders a raw score as a percentage with a
// human-readable confidence phrase.
func ConfidenceExplanation(score float64) string {
	percentage := NormalizeToPercentage(score)

	switch {
	case percentage >= 90:
		return fmt.Sprintf("%.1f%% match - Excellent fit based on your preferences", percentage)
	case percentage >= 80:
		return fmt.Sprintf("%.1f%% match - Very good match for your taste", percentage)
	case percentage >= 70:
		return fmt.Sprintf("%.1f%% match - Good recommendation based on your history", percentage)
	case percentage >= 60:
		return fmt.Sprintf("%.1f%% match - Decent match with your interests", percentage)
	case percentage >= 50:
		return fmt.Sprintf("%.1f%% match - Somewhat relevant to your preferences", percentage)
	default:
		return fmt.Sprintf("%.1f%% match - Based on general popularity", percentage)
	}
}
