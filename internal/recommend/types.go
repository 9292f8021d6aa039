// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import (
	"context"
)

// Movie represents a catalog movie with metadata for recommendations.
// Instances are treated as immutable for the duration of a request.
type Movie struct {
	// ID is the catalog document identifier.
	ID string `json:"id"`

	// Title is the movie title.
	Title string `json:"title"`

	// Overview is the plot synopsis used for content similarity.
	Overview string `json:"overview"`

	// Genres is a slice of genre names.
	Genres []string `json:"genres"`

	// Keywords is a slice of descriptive keywords.
	Keywords []string `json:"keywords,omitempty"`

	// Cast is a slice of top-billed actor names (at most five).
	Cast []string `json:"cast"`

	// Director is the director name, empty when unknown.
	Director string `json:"director,omitempty"`

	// ReleaseDate is the release date in YYYY-MM-DD format.
	ReleaseDate string `json:"release_date"`

	// Rating is the vote average (0-10).
	Rating float64 `json:"vote_average"`

	// Runtime is the runtime in minutes.
	Runtime int `json:"runtime"`

	// Popularity is a pre-computed popularity metric, zero when unavailable.
	Popularity float64 `json:"popularity"`

	// Language is the original language code.
	Language string `json:"original_language,omitempty"`

	// Categories lists catalog categories (now_playing, popular).
	Categories []string `json:"categories,omitempty"`

	// CinemaBrands lists the cinema chains screening this movie.
	CinemaBrands []string `json:"cinema_brands,omitempty"`

	// PosterPath is the poster image path.
	PosterPath string `json:"poster_path,omitempty"`

	// BackdropPath is the backdrop image path.
	BackdropPath string `json:"backdrop_path,omitempty"`

	// ImageURL is a direct image URL when the catalog stores one.
	ImageURL string `json:"image_url,omitempty"`
}

// Booking represents a single booking from a user's history.
type Booking struct {
	// MovieID is the booked movie's catalog identifier.
	MovieID string `json:"movie_id"`

	// MovieTitle is the title at booking time.
	MovieTitle string `json:"movie_title"`

	// Date is the show date.
	Date string `json:"date,omitempty"`

	// Time is the show time.
	Time string `json:"time,omitempty"`

	// Seats lists the booked seat labels.
	Seats []string `json:"seats,omitempty"`

	// Cinema is the cinema brand.
	Cinema string `json:"cinema,omitempty"`

	// TotalPrice is the booking total.
	TotalPrice float64 `json:"total_price,omitempty"`

	// Status is the booking status (active, cancelled).
	Status string `json:"status,omitempty"`

	// BookingDate is when the booking was made, normalized to YYYY-MM-DD.
	BookingDate string `json:"booking_date,omitempty"`
}

// UserProfile aggregates a user's booking history into preference signals.
// All occurrence counts and averages are derived from the bookings whose
// movies resolved in the catalog; TotalBookings is that resolved count and
// is greater than zero whenever a profile exists.
type UserProfile struct {
	// Genres maps genre name to occurrence count across booked movies.
	Genres map[string]int `json:"preferred_genres"`

	// Actors maps actor name to occurrence count across booked movies.
	Actors map[string]int `json:"preferred_actors"`

	// Directors maps director name to occurrence count.
	Directors map[string]int `json:"preferred_directors"`

	// AvgRating is the mean vote average of booked movies.
	AvgRating float64 `json:"avg_rating_preference"`

	// AvgRuntime is the mean runtime of booked movies in minutes.
	AvgRuntime float64 `json:"avg_runtime_preference"`

	// TotalBookings is the number of bookings that resolved to a movie.
	TotalBookings int `json:"total_bookings"`
}

// GenreMatch is the result of fuzzy-matching user genres against a movie.
type GenreMatch struct {
	// Score is the average best-match score in [0, 1].
	Score float64 `json:"score"`

	// Matched lists the movie genres that matched, in user-genre order.
	Matched []string `json:"matched"`

	// Explanation describes each match (exact or similar).
	Explanation string `json:"explanation"`
}

// ScoredRecommendation is a movie annotated with scoring output.
type ScoredRecommendation struct {
	Movie

	// Score is the raw similarity or preference score before normalization.
	Score float64 `json:"score"`

	// Confidence is the normalized score as a percentage (0-100, one decimal).
	Confidence float64 `json:"confidence_percentage"`

	// Reason is the human-readable recommendation reason.
	Reason string `json:"recommendation_reason"`

	// MatchExplanation describes how the movie matched the user's signals.
	MatchExplanation string `json:"match_explanation,omitempty"`

	// MatchedGenres lists the genres that contributed to the match.
	MatchedGenres []string `json:"matched_genres,omitempty"`

	// BookingCount is the aggregate booking count, set on most-booked results.
	BookingCount int `json:"booking_count,omitempty"`
}

// CatalogResult is the outcome of a catalog fetch. Available is false when
// the upstream store could not be reached; callers substitute a fallback
// catalog rather than treating that as an error.
type CatalogResult struct {
	Movies    []Movie
	Available bool
}

// ResultType identifies the strategy that produced a recommendation result.
type ResultType string

const (
	// ResultNewUser indicates no usable history; the client should collect
	// preferences and call the new-user endpoint.
	ResultNewUser ResultType = "new_user"

	// ResultSimilarMovies indicates content-similarity recommendations
	// anchored on a target movie.
	ResultSimilarMovies ResultType = "similar_movies"

	// ResultPersonalized indicates preference-scored recommendations from
	// the user's booking history.
	ResultPersonalized ResultType = "personalized"

	// ResultNewUserPreferences indicates genre/actor preference matching
	// for users without history.
	ResultNewUserPreferences ResultType = "new_user_preferences"
)

// FallbackTier identifies which tier of the cascade produced a result.
type FallbackTier string

const (
	// TierPrimary is the genre/actor preference match tier.
	TierPrimary FallbackTier = "primary"

	// TierMostBooked is the booking-aggregate popularity tier.
	TierMostBooked FallbackTier = "most_booked"

	// TierGenericPopular is the catalog-order popularity tier of last resort.
	TierGenericPopular FallbackTier = "generic_popular"
)

// NewUserPreferences echoes the preferences a new-user request was scored with.
type NewUserPreferences struct {
	Genres []string `json:"genres"`
	Actors []string `json:"actors"`
}

// RecommendationResult is the engine's response for any strategy.
// Type determines which fields are populated.
type RecommendationResult struct {
	// Type is the strategy that produced this result.
	Type ResultType `json:"type"`

	// Message carries guidance for new_user results.
	Message string `json:"message,omitempty"`

	// AvailableGenres lists selectable genres for new_user results.
	AvailableGenres []string `json:"available_genres,omitempty"`

	// Recommendations is the ranked list, at most MaxResults entries.
	Recommendations []ScoredRecommendation `json:"recommendations,omitempty"`

	// Profile is the user profile the scores were derived from.
	Profile *UserProfile `json:"user_profile,omitempty"`

	// ExcludedWatched is the number of already-watched movies excluded.
	ExcludedWatched int `json:"excluded_watched,omitempty"`

	// Preferences echoes new-user preferences.
	Preferences *NewUserPreferences `json:"user_preferences,omitempty"`

	// Tier records which fallback tier served the result.
	Tier FallbackTier `json:"-"`

	// Candidates is the number of catalog movies scored for this result.
	Candidates int `json:"-"`
}

// DataProvider supplies catalog and booking data to the engine.
// Implementations degrade on upstream failure: FetchMovie returns nil,
// FetchCatalog returns Available=false, FetchBookingAggregates returns an
// empty map. Failures never panic through the engine.
type DataProvider interface {
	// FetchMovie returns the movie with the given ID, or nil when it does
	// not exist or the store is unavailable.
	FetchMovie(ctx context.Context, id string) (*Movie, error)

	// FetchCatalog returns the full movie catalog.
	FetchCatalog(ctx context.Context) CatalogResult

	// FetchBookingAggregates returns booking counts keyed by movie ID
	// across all users.
	FetchBookingAggregates(ctx context.Context) (map[string]int, error)
}
