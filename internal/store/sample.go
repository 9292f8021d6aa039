// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package store

import (
	"context"

	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/recommend"
)

// SampleCatalog returns the built-in movie catalog used when the document
// store is unavailable or disabled.
func SampleCatalog() []recommend.Movie {
	return []recommend.Movie{
		{
			ID:           "1",
			Title:        "The Dark Knight",
			Overview:     "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
			PosterPath:   "/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
			BackdropPath: "/hqkIcbrOHL86UncnHIsHVcVmzue.jpg",
			Genres:       []string{"Action", "Crime", "Drama"},
			ReleaseDate:  "2008-07-18",
			Rating:       9.0,
			Popularity:   85.0,
			Runtime:      152,
			Language:     "en",
			Categories:   []string{"now_playing", "popular"},
			CinemaBrands: []string{"GSC", "LFS", "mmCineplexes"},
		},
		{
			ID:           "2",
			Title:        "Inception",
			Overview:     "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			PosterPath:   "/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
			BackdropPath: "/s3TBrRGB1iav7gFOCNx3H31MoES.jpg",
			Genres:       []string{"Action", "Sci-Fi", "Thriller"},
			ReleaseDate:  "2010-07-16",
			Rating:       8.8,
			Popularity:   78.0,
			Runtime:      148,
			Language:     "en",
			Categories:   []string{"now_playing", "popular"},
			CinemaBrands: []string{"GSC", "LFS"},
		},
		{
			ID:           "3",
			Title:        "Interstellar",
			Overview:     "The adventures of a group of explorers who make use of a newly discovered wormhole to surpass the limitations on human space travel and conquer the vast distances involved in an interstellar voyage.",
			PosterPath:   "/rAiYTfKGqDCRIIqo664sY9XZIvQ.jpg",
			BackdropPath: "/5a4wdoq7CBrEZMpBrKQjv7E2R5M.jpg",
			Genres:       []string{"Adventure", "Drama", "Sci-Fi"},
			ReleaseDate:  "2014-11-07",
			Rating:       8.6,
			Popularity:   72.0,
			Runtime:      169,
			Language:     "en",
			Categories:   []string{"now_playing"},
			CinemaBrands: []string{"GSC", "mmCineplexes"},
		},
		{
			ID:           "4",
			Title:        "The Matrix",
			Overview:     "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
			PosterPath:   "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
			BackdropPath: "/fNG7i7RqMErkcqhohV2a6cV1Ehy.jpg",
			Genres:       []string{"Action", "Sci-Fi"},
			ReleaseDate:  "1999-03-31",
			Rating:       8.7,
			Popularity:   65.0,
			Runtime:      136,
			Language:     "en",
			Categories:   []string{"popular"},
			CinemaBrands: []string{"LFS", "mmCineplexes"},
		},
		{
			ID:           "5",
			Title:        "Pulp Fiction",
			Overview:     "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
			PosterPath:   "/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg",
			BackdropPath: "/4cDFJr4H91XNjI48hpbLDNeA2tk.jpg",
			Genres:       []string{"Crime", "Drama"},
			ReleaseDate:  "1994-10-14",
			Rating:       8.9,
			Popularity:   58.0,
			Runtime:      154,
			Language:     "en",
			Categories:   []string{"popular"},
			CinemaBrands: []string{"GSC", "LFS"},
		},
	}
}

// SampleBookingAggregates returns booking counts over the sample catalog for
// store-disabled deployments.
func SampleBookingAggregates() map[string]int {
	return map[string]int{
		"1": 14,
		"2": 11,
		"3": 7,
		"4": 9,
		"5": 6,
	}
}

// Ensure MockProvider implements recommend.DataProvider.
var _ recommend.DataProvider = (*MockProvider)(nil)

// MockProvider serves the sample catalog without any upstream store. Used in
// tests and when the document store is disabled in config.
type MockProvider struct {
	catalog    []recommend.Movie
	aggregates map[string]int
}

// NewMockProvider creates a provider over the sample data.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		catalog:    SampleCatalog(),
		aggregates: SampleBookingAggregates(),
	}
}

// FetchMovie returns the sample movie with the given ID, or nil.
func (p *MockProvider) FetchMovie(_ context.Context, id string) (*recommend.Movie, error) {
	for i := range p.catalog {
		if p.catalog[i].ID == id {
			movie := p.catalog[i]
			return &movie, nil
		}
	}
	return nil, nil
}

// FetchCatalog returns the sample catalog.
func (p *MockProvider) FetchCatalog(_ context.Context) recommend.CatalogResult {
	movies := make([]recommend.Movie, len(p.catalog))
	copy(movies, p.catalog)
	return recommend.CatalogResult{Movies: movies, Available: true}
}

// FetchBookingAggregates returns the sample booking counts.
func (p *MockProvider) FetchBookingAggregates(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(p.aggregates))
	for id, count := range p.aggregates {
		counts[id] = count
	}
	return counts, nil
}
