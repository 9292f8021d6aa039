// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/metrics"
	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/recommend"
)

// Ensure BreakerProvider implements recommend.DataProvider.
var _ recommend.DataProvider = (*BreakerProvider)(nil)

// BreakerProvider wraps a DataProvider with a circuit breaker so an
// unavailable or slow document store cannot cascade into every request.
// When the circuit is open, calls short-circuit into the same degraded
// values a failed upstream call would produce, and the engine falls back
// to its built-in catalog.
type BreakerProvider struct {
	inner  recommend.DataProvider
	cb     *gobreaker.CircuitBreaker[any]
	name   string
	logger zerolog.Logger
}

// NewBreakerProvider creates a circuit-breaking provider.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 1 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 5 requests
//
//nolint:gocritic // zerolog.Logger is passed by value per its documented usage
func NewBreakerProvider(inner recommend.DataProvider, logger zerolog.Logger) *BreakerProvider {
	cbName := "document-store"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening document store circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info().
				Str("from", breakerStateString(from)).
				Str("to", breakerStateString(to)).
				Msg("document store circuit state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateFloat(to))
		},
	})

	return &BreakerProvider{
		inner:  inner,
		cb:     cb,
		name:   cbName,
		logger: logger,
	}
}

// execute wraps a store call with circuit breaker protection.
func (p *BreakerProvider) execute(fn func() (any, error)) (any, error) {
	result, err := p.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(p.name, "rejected").Inc()
			p.logger.Warn().Err(err).Msg("document store request rejected by circuit breaker")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(p.name, "failure").Inc()
		}
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(p.name, "success").Inc()
	return result, nil
}

// FetchMovie fetches a movie with circuit breaker protection.
func (p *BreakerProvider) FetchMovie(ctx context.Context, id string) (*recommend.Movie, error) {
	result, err := p.execute(func() (any, error) {
		return p.inner.FetchMovie(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	movie, _ := result.(*recommend.Movie)
	return movie, nil
}

// FetchCatalog fetches the catalog with circuit breaker protection. An open
// circuit degrades to an unavailable catalog.
func (p *BreakerProvider) FetchCatalog(ctx context.Context) recommend.CatalogResult {
	result, err := p.execute(func() (any, error) {
		catalog := p.inner.FetchCatalog(ctx)
		if !catalog.Available {
			// Count unavailability as a breaker failure even though the
			// inner provider reports it as a degraded value.
			return catalog, errUpstreamUnavailable
		}
		return catalog, nil
	})
	if err != nil {
		return recommend.CatalogResult{Available: false}
	}
	catalog, ok := result.(recommend.CatalogResult)
	if !ok {
		return recommend.CatalogResult{Available: false}
	}
	return catalog
}

// FetchBookingAggregates fetches booking counts with circuit breaker
// protection.
func (p *BreakerProvider) FetchBookingAggregates(ctx context.Context) (map[string]int, error) {
	result, err := p.execute(func() (any, error) {
		return p.inner.FetchBookingAggregates(ctx)
	})
	if err != nil {
		return nil, err
	}
	counts, _ := result.(map[string]int)
	return counts, nil
}

// errUpstreamUnavailable marks a degraded catalog fetch as a breaker failure.
var errUpstreamUnavailable = errors.New("document store unavailable")

func breakerStateFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func breakerStateString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
