// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// RecommendForNewUser generates recommendations from stated genre and actor
// preferences, falling back through a three-tier cascade when the primary
// match is empty or weak. Tiers replace each other, never merge:
//
//  1. Primary: fuzzy genre matching over the whole catalog.
//  2. MostBooked: booking-aggregate popularity when no primary candidate
//     reaches the confidence floor.
//  3. GenericPopular: leading catalog movies when no booking data exists.
func (e *Engine) RecommendForNewUser(ctx context.Context, preferredGenres, preferredActors []string) (*RecommendationResult, error) {
	if len(preferredGenres) == 0 {
		return nil, ErrNoPreferredGenres
	}

	catalog := e.catalog(ctx)
	recs := e.primaryMatches(catalog, preferredGenres, preferredActors)
	tier := TierPrimary

	highConfidence := 0
	for _, rec := range recs {
		if rec.Confidence >= e.config.NewUser.ConfidenceFloor {
			highConfidence++
		}
	}

	if len(recs) == 0 || highConfidence == 0 {
		primaryEmpty := len(recs) == 0
		if primaryEmpty {
			e.logger.Info().
				Strs("preferred_genres", preferredGenres).
				Msg("no genre matches found, trying most booked movies")
		} else {
			e.logger.Info().
				Strs("preferred_genres", preferredGenres).
				Int("low_confidence_matches", len(recs)).
				Msg("only low-confidence matches found, trying most booked movies")
		}

		if booked := e.mostBooked(ctx, preferredGenres, primaryEmpty); len(booked) > 0 {
			recs = booked
			tier = TierMostBooked
		} else {
			recs = e.genericPopular(catalog, preferredGenres)
			tier = TierGenericPopular
		}
	}

	recs = dedupeByID(recs)
	sort.SliceStable(recs, func(a, b int) bool {
		if recs[a].Confidence != recs[b].Confidence {
			return recs[a].Confidence > recs[b].Confidence
		}
		return recs[a].Rating > recs[b].Rating
	})
	recs = truncate(recs, e.config.Limits.MaxResults)

	e.logger.Info().
		Str("tier", string(tier)).
		Int("returned", len(recs)).
		Msg("new user recommendations generated")

	return &RecommendationResult{
		Type:            ResultNewUserPreferences,
		Recommendations: recs,
		Preferences: &NewUserPreferences{
			Genres: preferredGenres,
			Actors: preferredActors,
		},
		Tier:       tier,
		Candidates: len(catalog),
	}, nil
}

// primaryMatches scores every catalog movie by fuzzy genre match, keeping
// those with any match. Confidence = GenreWeight*genreScore + ActorBonus
// when a preferred actor appears in the cast.
func (e *Engine) primaryMatches(catalog []Movie, preferredGenres, preferredActors []string) []ScoredRecommendation {
	var recs []ScoredRecommendation

	for i := range catalog {
		movie := &catalog[i]

		match := MatchGenres(preferredGenres, movie.Genres)
		if match.Score <= 0 {
			continue
		}

		matchedActors := intersect(movie.Cast, preferredActors)
		score := match.Score * e.config.NewUser.GenreWeight
		if len(matchedActors) > 0 {
			score += e.config.NewUser.ActorBonus
		}
		confidence := NormalizeToPercentage(score)

		var reason string
		if len(matchedActors) > 0 {
			reason = fmt.Sprintf("%.1f%% match - %s movie featuring %s",
				confidence, strings.Join(match.Matched, ", "), strings.Join(matchedActors, ", "))
		} else {
			reason = fmt.Sprintf("%.1f%% match - %s movie based on your preferences",
				confidence, strings.Join(match.Matched, ", "))
		}

		recs = append(recs, ScoredRecommendation{
			Movie:            *movie,
			Score:            score,
			Confidence:       confidence,
			Reason:           reason,
			MatchExplanation: match.Explanation,
			MatchedGenres:    match.Matched,
		})
	}

	return recs
}

// mostBooked builds the booking-aggregate popularity tier. Returns nil when
// aggregates are empty or unavailable.
func (e *Engine) mostBooked(ctx context.Context, preferredGenres []string, primaryEmpty bool) []ScoredRecommendation {
	counts, err := e.provider.FetchBookingAggregates(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("booking aggregates unavailable")
		return nil
	}
	if len(counts) == 0 {
		return nil
	}

	type bookedMovie struct {
		id    string
		count int
	}
	ranked := make([]bookedMovie, 0, len(counts))
	for id, count := range counts {
		ranked = append(ranked, bookedMovie{id: id, count: count})
	}
	// Count descending; ID ascending keeps equal counts deterministic.
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].count != ranked[b].count {
			return ranked[a].count > ranked[b].count
		}
		return ranked[a].id < ranked[b].id
	})

	genreList := strings.Join(preferredGenres, ", ")
	confidence := e.config.NewUser.MostBookedConfidence

	var recs []ScoredRecommendation
	for _, entry := range ranked {
		if len(recs) >= e.config.Limits.MaxResults {
			break
		}
		movie := e.resolveMovie(ctx, entry.id)
		if movie == nil {
			continue
		}

		var reason, explanation string
		if primaryEmpty {
			reason = fmt.Sprintf("%.0f%% match - Popular choice among users (booked %d times, no exact match for %s)",
				confidence, entry.count, genreList)
			explanation = fmt.Sprintf("No matches found for %s, showing most booked movies by other users", genreList)
		} else {
			reason = fmt.Sprintf("%.0f%% match - Popular choice among users (booked %d times, low match for %s)",
				confidence, entry.count, genreList)
			explanation = fmt.Sprintf("Low confidence matches for %s, showing most booked movies by other users instead", genreList)
		}

		recs = append(recs, ScoredRecommendation{
			Movie:            *movie,
			Score:            confidence / 100,
			Confidence:       confidence,
			Reason:           reason,
			MatchExplanation: explanation,
			BookingCount:     entry.count,
		})
	}

	return recs
}

// genericPopular builds the tier of last resort from the leading catalog
// movies at a fixed neutral confidence.
func (e *Engine) genericPopular(catalog []Movie, preferredGenres []string) []ScoredRecommendation {
	genreList := strings.Join(preferredGenres, ", ")
	confidence := e.config.NewUser.PopularConfidence

	limit := e.config.Limits.MaxResults
	if len(catalog) < limit {
		limit = len(catalog)
	}

	recs := make([]ScoredRecommendation, 0, limit)
	for i := 0; i < limit; i++ {
		recs = append(recs, ScoredRecommendation{
			Movie:      catalog[i],
			Score:      confidence / 100,
			Confidence: confidence,
			Reason: fmt.Sprintf("%.0f%% match - Popular movie (no exact genre match for %s)",
				confidence, genreList),
			MatchExplanation: fmt.Sprintf("No matches found for %s, showing popular movies", genreList),
		})
	}

	return recs
}

// dedupeByID removes duplicate movies, keeping the first occurrence.
func dedupeByID(recs []ScoredRecommendation) []ScoredRecommendation {
	seen := make(map[string]struct{}, len(recs))
	unique := recs[:0]
	for _, rec := range recs {
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		unique = append(unique, rec)
	}
	return unique
}

// intersect returns the members of a that also appear in b, in a's order.
func intersect(a, b []string) []string {
	if len(b) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}
	var out []string
	for _, s := range a {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
