// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import (
	"math"
	"testing"
)

func TestPreferenceScore(t *testing.T) {
	cfg := DefaultConfig()

	profile := &UserProfile{
		Genres:        map[string]int{"Action": 2, "Sci-Fi": 1},
		Actors:        map[string]int{"Keanu Reeves": 1},
		Directors:     map[string]int{"Christopher Nolan": 1},
		AvgRating:     8.5,
		TotalBookings: 2,
	}

	tests := []struct {
		name  string
		movie Movie
		want  float64
	}{
		{
			name: "full overlap",
			movie: Movie{
				Genres:   []string{"Action", "Sci-Fi"},
				Cast:     []string{"Keanu Reeves"},
				Director: "Christopher Nolan",
				Rating:   8.5,
			},
			// genre: min(3/2,1)=1 *0.4; actor: min(1/2,1)=0.5 *0.3;
			// director: 1/2 *0.2; rating: 1 *0.1
			want: 0.4 + 0.15 + 0.1 + 0.1,
		},
		{
			name: "no overlap",
			movie: Movie{
				Genres: []string{"Romance"},
				Cast:   []string{"Hugh Grant"},
				Rating: 8.5,
			},
			// only the rating-closeness component contributes
			want: 0.1,
		},
		{
			name: "rating distance penalized",
			movie: Movie{
				Genres: []string{"Romance"},
				Rating: 3.5,
			},
			// |3.5-8.5|/10 = 0.5 closeness
			want: 0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.preferenceScore(profile, &tt.movie)
			if math.Abs(got-tt.want) > scoreEpsilon {
				t.Errorf("preferenceScore = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestRawPreferenceScore(t *testing.T) {
	profile := &UserProfile{
		Genres:        map[string]int{"Action": 2, "Crime": 1},
		Actors:        map[string]int{"Christian Bale": 1},
		TotalBookings: 2,
	}

	movie := Movie{
		Genres: []string{"Action", "Crime"},
		Cast:   []string{"Christian Bale", "Unknown Actor"},
	}

	// (2 + 1 + 1) / 2
	want := 2.0
	if got := rawPreferenceScore(profile, &movie); math.Abs(got-want) > scoreEpsilon {
		t.Errorf("rawPreferenceScore = %v; want %v", got, want)
	}
}

func TestSimilarityContentOnly(t *testing.T) {
	cfg := DefaultConfig()

	target := &Movie{
		Overview: "a hacker discovers reality is a simulation",
		Genres:   []string{"Action", "Sci-Fi"},
	}
	twin := &Movie{
		Overview: "a hacker discovers reality is a simulation",
		Genres:   []string{"Action", "Sci-Fi"},
	}
	stranger := &Movie{
		Overview: "wedding planner falls for her client",
		Genres:   []string{"Romance", "Comedy"},
	}

	scores := cfg.Similarity(target, []*Movie{twin, stranger}, nil)

	if len(scores) != 2 {
		t.Fatalf("len(scores) = %d; want 2", len(scores))
	}
	if math.Abs(scores[0]-1.0) > 1e-9 {
		t.Errorf("identical movie score = %v; want 1.0", scores[0])
	}
	if scores[1] != 0 {
		t.Errorf("unrelated movie score = %v; want 0", scores[1])
	}
}

func TestSimilarityBlendsProfile(t *testing.T) {
	cfg := DefaultConfig()

	target := &Movie{
		Overview: "a hacker discovers reality is a simulation",
		Genres:   []string{"Action", "Sci-Fi"},
	}
	candidate := &Movie{
		Overview: "a hacker discovers reality is a simulation",
		Genres:   []string{"Action", "Sci-Fi"},
		Rating:   8.7,
	}

	profile := &UserProfile{
		Genres:        map[string]int{"Action": 1, "Sci-Fi": 1},
		Actors:        map[string]int{},
		Directors:     map[string]int{},
		AvgRating:     8.7,
		TotalBookings: 1,
	}

	withProfile := cfg.Similarity(target, []*Movie{candidate}, profile)[0]
	withoutProfile := cfg.Similarity(target, []*Movie{candidate}, nil)[0]

	// content = 1.0; preference = genre 1*0.4 + rating 1*0.1 = 0.5
	// blended = 0.6*1.0 + 0.4*0.5 = 0.8
	if math.Abs(withProfile-0.8) > 1e-9 {
		t.Errorf("blended score = %v; want 0.8", withProfile)
	}
	if math.Abs(withoutProfile-1.0) > 1e-9 {
		t.Errorf("content-only score = %v; want 1.0", withoutProfile)
	}
}

func TestSimilarityDegenerateCandidates(t *testing.T) {
	cfg := DefaultConfig()

	target := &Movie{Overview: "a hacker discovers reality"}
	empty := &Movie{}

	scores := cfg.Similarity(target, []*Movie{empty}, nil)
	if scores[0] != 0 {
		t.Errorf("empty candidate score = %v; want 0", scores[0])
	}
}
