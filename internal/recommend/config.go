// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import (
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Blend defines how content similarity and preference scores combine.
	Blend BlendWeights `json:"blend"`

	// Preference defines the components of the preference score.
	Preference PreferenceWeights `json:"preference"`

	// NewUser contains parameters for the new-user cascade.
	NewUser NewUserConfig `json:"new_user"`

	// Text contains parameters for the TF-IDF vectorizer.
	Text TextConfig `json:"text"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// BlendWeights combines content and preference scores for profiled users.
type BlendWeights struct {
	// Content is the weight of the TF-IDF cosine similarity.
	// Default: 0.6.
	Content float64 `json:"content"`

	// Preference is the weight of the user-profile preference score.
	// Default: 0.4.
	Preference float64 `json:"preference"`
}

// PreferenceWeights defines the components of the preference score.
// Genre and actor components are divided by the profile's total bookings
// and capped at 1.0 before weighting.
type PreferenceWeights struct {
	// Genre is the weight of genre occurrence overlap.
	// Default: 0.4.
	Genre float64 `json:"genre"`

	// Actor is the weight of cast occurrence overlap.
	// Default: 0.3.
	Actor float64 `json:"actor"`

	// Director is the weight of director occurrence overlap.
	// Default: 0.2.
	Director float64 `json:"director"`

	// Rating is the weight of rating closeness to the user's average.
	// Default: 0.1.
	Rating float64 `json:"rating"`
}

// NewUserConfig contains parameters for the new-user fallback cascade.
type NewUserConfig struct {
	// GenreWeight scales the fuzzy genre match score.
	// Default: 0.8.
	GenreWeight float64 `json:"genre_weight"`

	// ActorBonus is added when a preferred actor appears in the cast.
	// Default: 0.2.
	ActorBonus float64 `json:"actor_bonus"`

	// ConfidenceFloor is the minimum confidence percentage a primary-tier
	// candidate must reach; below it the cascade falls through.
	// Default: 60.
	ConfidenceFloor float64 `json:"confidence_floor"`

	// MostBookedConfidence is the fixed confidence for most-booked results.
	// Default: 75.
	MostBookedConfidence float64 `json:"most_booked_confidence"`

	// PopularConfidence is the fixed confidence for generic popular results.
	// Default: 50.
	PopularConfidence float64 `json:"popular_confidence"`
}

// TextConfig contains parameters for the TF-IDF vectorizer.
type TextConfig struct {
	// MaxFeatures caps the vocabulary at the terms with the highest
	// corpus frequency.
	// Default: 5000.
	MaxFeatures int `json:"max_features"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// MaxResults is the maximum number of recommendations returned.
	// Default: 10.
	MaxResults int `json:"max_results"`

	// MaxCast is how many top-billed cast members contribute to profiles
	// and similarity documents.
	// Default: 5.
	MaxCast int `json:"max_cast"`
}

// DefaultConfig returns a Config with the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Blend: BlendWeights{
			Content:    0.6,
			Preference: 0.4,
		},
		Preference: PreferenceWeights{
			Genre:    0.4,
			Actor:    0.3,
			Director: 0.2,
			Rating:   0.1,
		},
		NewUser: NewUserConfig{
			GenreWeight:          0.8,
			ActorBonus:           0.2,
			ConfidenceFloor:      60,
			MostBookedConfidence: 75,
			PopularConfidence:    50,
		},
		Text: TextConfig{
			MaxFeatures: 5000,
		},
		Limits: LimitsConfig{
			MaxResults: 10,
			MaxCast:    5,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Blend.Content < 0 || c.Blend.Content > 1 {
		return fmt.Errorf("blend.content must be in [0, 1], got %f", c.Blend.Content)
	}
	if c.Blend.Preference < 0 || c.Blend.Preference > 1 {
		return fmt.Errorf("blend.preference must be in [0, 1], got %f", c.Blend.Preference)
	}

	for _, w := range []struct {
		name  string
		value float64
	}{
		{"preference.genre", c.Preference.Genre},
		{"preference.actor", c.Preference.Actor},
		{"preference.director", c.Preference.Director},
		{"preference.rating", c.Preference.Rating},
		{"new_user.genre_weight", c.NewUser.GenreWeight},
		{"new_user.actor_bonus", c.NewUser.ActorBonus},
	} {
		if w.value < 0 || w.value > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %f", w.name, w.value)
		}
	}

	if c.NewUser.ConfidenceFloor < 0 || c.NewUser.ConfidenceFloor > 100 {
		return fmt.Errorf("new_user.confidence_floor must be in [0, 100], got %f", c.NewUser.ConfidenceFloor)
	}

	if c.Text.MaxFeatures < 1 {
		return fmt.Errorf("text.max_features must be positive, got %d", c.Text.MaxFeatures)
	}
	if c.Limits.MaxResults < 1 {
		return fmt.Errorf("limits.max_results must be positive, got %d", c.Limits.MaxResults)
	}
	if c.Limits.MaxCast < 1 {
		return fmt.Errorf("limits.max_cast must be positive, got %d", c.Limits.MaxCast)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types
	return &Config{
		Blend:      c.Blend,
		Preference: c.Preference,
		NewUser:    c.NewUser,
		Text:       c.Text,
		Limits:     c.Limits,
	}
}
