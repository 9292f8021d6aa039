// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package config

import (
	"fmt"
	"time"

	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/recommend"
)

// Config is the complete service configuration, loaded from defaults, an
// optional YAML file, and environment variables (highest priority).
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Firestore FirestoreConfig `koanf:"firestore"`
	Cache     CacheConfig     `koanf:"cache"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// FirestoreConfig holds document store settings. When disabled the service
// serves the built-in sample catalog.
type FirestoreConfig struct {
	Enabled bool          `koanf:"enabled"`
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

// CacheConfig holds movie cache settings.
type CacheConfig struct {
	Capacity int           `koanf:"capacity"`
	TTL      time.Duration `koanf:"ttl"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds the tunable scoring weights of the recommendation
// engine. Zero values mean "use the engine default".
type RecommendConfig struct {
	BlendContent     float64 `koanf:"blend_content"`
	BlendPreference  float64 `koanf:"blend_preference"`
	GenreWeight      float64 `koanf:"genre_weight"`
	ActorWeight      float64 `koanf:"actor_weight"`
	DirectorWeight   float64 `koanf:"director_weight"`
	RatingWeight     float64 `koanf:"rating_weight"`
	MaxResults       int     `koanf:"max_results"`
	TfidfMaxFeatures int     `koanf:"tfidf_max_features"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Firestore.Enabled && c.Firestore.BaseURL == "" {
		return fmt.Errorf("firestore.base_url is required when firestore is enabled")
	}
	if c.Cache.Capacity < 0 {
		return fmt.Errorf("cache.capacity must not be negative, got %d", c.Cache.Capacity)
	}
	if !c.Security.RateLimitDisabled && c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return fmt.Errorf("logging.level must be a zerolog level, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// EngineConfig converts the configured weights into an engine configuration,
// keeping engine defaults for anything left at zero.
func (c *Config) EngineConfig() *recommend.Config {
	engine := recommend.DefaultConfig()

	r := c.Recommend
	if r.BlendContent > 0 {
		engine.Blend.Content = r.BlendContent
	}
	if r.BlendPreference > 0 {
		engine.Blend.Preference = r.BlendPreference
	}
	if r.GenreWeight > 0 {
		engine.Preference.Genre = r.GenreWeight
	}
	if r.ActorWeight > 0 {
		engine.Preference.Actor = r.ActorWeight
	}
	if r.DirectorWeight > 0 {
		engine.Preference.Director = r.DirectorWeight
	}
	if r.RatingWeight > 0 {
		engine.Preference.Rating = r.RatingWeight
	}
	if r.MaxResults > 0 {
		engine.Limits.MaxResults = r.MaxResults
	}
	if r.TfidfMaxFeatures > 0 {
		engine.Text.MaxFeatures = r.TfidfMaxFeatures
	}

	return engine
}
