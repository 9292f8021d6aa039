// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/recommend"
)

// flakyProvider fails every call until healed.
type flakyProvider struct {
	healthy bool
	calls   int
}

var errFlaky = errors.New("store exploded")

func (p *flakyProvider) FetchMovie(_ context.Context, id string) (*recommend.Movie, error) {
	p.calls++
	if !p.healthy {
		return nil, errFlaky
	}
	return &recommend.Movie{ID: id, Title: "Healed"}, nil
}

func (p *flakyProvider) FetchCatalog(_ context.Context) recommend.CatalogResult {
	p.calls++
	if !p.healthy {
		return recommend.CatalogResult{Available: false}
	}
	return recommend.CatalogResult{Movies: SampleCatalog(), Available: true}
}

func (p *flakyProvider) FetchBookingAggregates(_ context.Context) (map[string]int, error) {
	p.calls++
	if !p.healthy {
		return nil, errFlaky
	}
	return map[string]int{"1": 1}, nil
}

func TestBreakerPassesThroughHealthyCalls(t *testing.T) {
	inner := &flakyProvider{healthy: true}
	provider := NewBreakerProvider(inner, zerolog.Nop())

	movie, err := provider.FetchMovie(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, "Healed", movie.Title)

	catalog := provider.FetchCatalog(context.Background())
	assert.True(t, catalog.Available)
	assert.Len(t, catalog.Movies, 5)

	counts, err := provider.FetchBookingAggregates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 1}, counts)
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	inner := &flakyProvider{healthy: false}
	provider := NewBreakerProvider(inner, zerolog.Nop())

	// Five failures at a 100% failure rate trip the breaker.
	for i := 0; i < 5; i++ {
		_, err := provider.FetchBookingAggregates(context.Background())
		require.Error(t, err)
	}
	callsBeforeOpen := inner.calls

	_, err := provider.FetchBookingAggregates(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, callsBeforeOpen, inner.calls, "open circuit should not reach the inner provider")
}

func TestBreakerDegradesCatalogWhenOpen(t *testing.T) {
	inner := &flakyProvider{healthy: false}
	provider := NewBreakerProvider(inner, zerolog.Nop())

	for i := 0; i < 6; i++ {
		catalog := provider.FetchCatalog(context.Background())
		assert.False(t, catalog.Available)
	}
	// Breaker is now open: degraded results keep flowing without upstream calls.
	callsBeforeOpen := inner.calls
	catalog := provider.FetchCatalog(context.Background())
	assert.False(t, catalog.Available)
	assert.Equal(t, callsBeforeOpen, inner.calls)
}

func TestBreakerTreatsMovieMissAsSuccess(t *testing.T) {
	provider := NewBreakerProvider(NewMockProvider(), zerolog.Nop())

	for i := 0; i < 10; i++ {
		movie, err := provider.FetchMovie(context.Background(), "no-such-movie")
		require.NoError(t, err)
		assert.Nil(t, movie)
	}

	// Misses are not failures: the circuit stays closed.
	movie, err := provider.FetchMovie(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, "The Dark Knight", movie.Title)
}
