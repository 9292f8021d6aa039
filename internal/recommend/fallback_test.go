// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestRecommendForNewUserRequiresGenres(t *testing.T) {
	engine := newTestEngine(t, providerFromCatalog())

	_, err := engine.RecommendForNewUser(context.Background(), nil, nil)
	if !errors.Is(err, ErrNoPreferredGenres) {
		t.Errorf("err = %v; want ErrNoPreferredGenres", err)
	}
}

func TestRecommendForNewUserExactGenreMatch(t *testing.T) {
	// A Horror fan against a Horror/Comedy catalog gets exactly the Horror
	// movie at 0.8 * 1.0 = 80.0 confidence.
	provider := &fakeProvider{
		catalog: []Movie{
			{ID: "h1", Title: "The Conjuring", Genres: []string{"Horror"}, Rating: 7.5},
			{ID: "c1", Title: "Superbad", Genres: []string{"Comedy"}, Rating: 7.6},
		},
	}
	engine := newTestEngine(t, provider)

	result, err := engine.RecommendForNewUser(context.Background(), []string{"Horror"}, nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	if result.Type != ResultNewUserPreferences {
		t.Errorf("Type = %q; want %q", result.Type, ResultNewUserPreferences)
	}
	if result.Tier != TierPrimary {
		t.Errorf("Tier = %q; want %q", result.Tier, TierPrimary)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("got %d recommendations; want 1", len(result.Recommendations))
	}

	rec := result.Recommendations[0]
	if rec.ID != "h1" {
		t.Errorf("ID = %q; want h1", rec.ID)
	}
	if rec.Confidence != 80.0 {
		t.Errorf("Confidence = %v; want 80.0", rec.Confidence)
	}
	if !reflect.DeepEqual(rec.MatchedGenres, []string{"Horror"}) {
		t.Errorf("MatchedGenres = %v; want [Horror]", rec.MatchedGenres)
	}
}

func TestRecommendForNewUserActorBonus(t *testing.T) {
	provider := &fakeProvider{
		catalog: []Movie{
			{
				ID: "m1", Title: "John Wick",
				Genres: []string{"Action"},
				Cast:   []string{"Keanu Reeves"},
				Rating: 7.4,
			},
		},
	}
	engine := newTestEngine(t, provider)

	result, err := engine.RecommendForNewUser(context.Background(), []string{"Action"}, []string{"Keanu Reeves"})
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	rec := result.Recommendations[0]
	// 0.8 genre + 0.2 actor bonus
	if rec.Confidence != 100.0 {
		t.Errorf("Confidence = %v; want 100.0", rec.Confidence)
	}
	if !strings.Contains(rec.Reason, "featuring Keanu Reeves") {
		t.Errorf("Reason = %q; should name the matched actor", rec.Reason)
	}
}

func TestRecommendForNewUserMostBookedFallback(t *testing.T) {
	// Documentary has no exact match in the catalog; the affinity match on
	// Drama yields 0.7*0.8 = 56.0 confidence, under the floor, so booking
	// aggregates take over and replace the primary tier entirely.
	provider := providerFromCatalog()
	provider.aggregates = map[string]int{"1": 3, "5": 5}

	engine := newTestEngine(t, provider)

	result, err := engine.RecommendForNewUser(context.Background(), []string{"Documentary"}, nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	if result.Tier != TierMostBooked {
		t.Fatalf("Tier = %q; want %q", result.Tier, TierMostBooked)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("got %d recommendations; want 2", len(result.Recommendations))
	}

	// Both carry the fixed 75.0 confidence, so the final sort tie-breaks
	// by vote average: The Dark Knight (9.0) ahead of Pulp Fiction (8.9).
	top := result.Recommendations[0]
	if top.ID != "1" {
		t.Errorf("top ID = %q; want 1", top.ID)
	}
	if top.BookingCount != 3 {
		t.Errorf("BookingCount = %d; want 3", top.BookingCount)
	}
	if top.Confidence != 75.0 {
		t.Errorf("Confidence = %v; want 75.0", top.Confidence)
	}
	if !strings.Contains(top.Reason, "booked 3 times") {
		t.Errorf("Reason = %q; should cite the booking count", top.Reason)
	}
	if !strings.Contains(top.Reason, "low match for Documentary") {
		t.Errorf("Reason = %q; should note the weak genre match", top.Reason)
	}
	if result.Recommendations[1].ID != "5" {
		t.Errorf("second ID = %q; want 5", result.Recommendations[1].ID)
	}
}

func TestRecommendForNewUserMostBookedWhenNoMatches(t *testing.T) {
	provider := &fakeProvider{
		catalog: []Movie{
			{ID: "r1", Title: "Notting Hill", Genres: []string{"Romance"}, Rating: 7.1},
		},
		movies: map[string]*Movie{
			"r1": {ID: "r1", Title: "Notting Hill", Genres: []string{"Romance"}, Rating: 7.1},
		},
		aggregates: map[string]int{"r1": 4},
	}
	engine := newTestEngine(t, provider)

	// Documentary vs Romance: no exact or affinity match at all.
	result, err := engine.RecommendForNewUser(context.Background(), []string{"Documentary"}, nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	if result.Tier != TierMostBooked {
		t.Fatalf("Tier = %q; want %q", result.Tier, TierMostBooked)
	}
	top := result.Recommendations[0]
	if !strings.Contains(top.Reason, "no exact match for Documentary") {
		t.Errorf("Reason = %q; should note no matches were found", top.Reason)
	}
}

func TestRecommendForNewUserGenericPopularFallback(t *testing.T) {
	tests := []struct {
		name       string
		aggregates map[string]int
		aggErr     error
	}{
		{name: "no booking data", aggregates: map[string]int{}},
		{name: "aggregates unavailable", aggErr: errors.New("upstream down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := providerFromCatalog()
			provider.aggregates = tt.aggregates
			provider.aggErr = tt.aggErr

			engine := newTestEngine(t, provider)

			result, err := engine.RecommendForNewUser(context.Background(), []string{"Documentary"}, nil)
			if err != nil {
				t.Fatalf("err = %v", err)
			}

			if result.Tier != TierGenericPopular {
				t.Fatalf("Tier = %q; want %q", result.Tier, TierGenericPopular)
			}
			if len(result.Recommendations) == 0 || len(result.Recommendations) > 10 {
				t.Fatalf("got %d recommendations; want 1..10", len(result.Recommendations))
			}
			for _, rec := range result.Recommendations {
				if rec.Confidence != 50.0 {
					t.Errorf("Confidence = %v; want 50.0", rec.Confidence)
				}
				if !strings.Contains(rec.Reason, "no exact genre match for Documentary") {
					t.Errorf("Reason = %q", rec.Reason)
				}
			}
		})
	}
}

func TestRecommendForNewUserDeduplicatesAndSorts(t *testing.T) {
	provider := &fakeProvider{
		catalog: []Movie{
			{ID: "a", Title: "A", Genres: []string{"Action"}, Rating: 7.0},
			{ID: "a", Title: "A again", Genres: []string{"Action"}, Rating: 9.9},
			{ID: "b", Title: "B", Genres: []string{"Action"}, Rating: 8.0},
		},
	}
	engine := newTestEngine(t, provider)

	result, err := engine.RecommendForNewUser(context.Background(), []string{"Action"}, nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	if len(result.Recommendations) != 2 {
		t.Fatalf("got %d recommendations; want 2 after dedup", len(result.Recommendations))
	}
	// First occurrence wins the dedup; equal confidence sorts by rating.
	if result.Recommendations[0].ID != "b" {
		t.Errorf("top = %q; want b (higher rating at equal confidence)", result.Recommendations[0].ID)
	}
	if result.Recommendations[1].Title != "A" {
		t.Errorf("dedup kept %q; want the first occurrence", result.Recommendations[1].Title)
	}
}

func TestRecommendForNewUserIdempotent(t *testing.T) {
	engine := newTestEngine(t, providerFromCatalog())

	first, err := engine.RecommendForNewUser(context.Background(), []string{"Action", "Sci-Fi"}, nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	second, err := engine.RecommendForNewUser(context.Background(), []string{"Action", "Sci-Fi"}, nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical requests should produce identical results")
	}
}

func TestRecommendForNewUserEchoesPreferences(t *testing.T) {
	engine := newTestEngine(t, providerFromCatalog())

	genres := []string{"Action"}
	actors := []string{"Keanu Reeves"}
	result, err := engine.RecommendForNewUser(context.Background(), genres, actors)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	if result.Preferences == nil {
		t.Fatal("Preferences should be echoed")
	}
	if !reflect.DeepEqual(result.Preferences.Genres, genres) {
		t.Errorf("Preferences.Genres = %v; want %v", result.Preferences.Genres, genres)
	}
	if !reflect.DeepEqual(result.Preferences.Actors, actors) {
		t.Errorf("Preferences.Actors = %v; want %v", result.Preferences.Actors, actors)
	}
}
