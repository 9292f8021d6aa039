// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/recommend"
)

// countingProvider counts upstream calls so cache behavior is observable.
type countingProvider struct {
	inner recommend.DataProvider
	movie int
}

func (p *countingProvider) FetchMovie(ctx context.Context, id string) (*recommend.Movie, error) {
	p.movie++
	return p.inner.FetchMovie(ctx, id)
}

func (p *countingProvider) FetchCatalog(ctx context.Context) recommend.CatalogResult {
	return p.inner.FetchCatalog(ctx)
}

func (p *countingProvider) FetchBookingAggregates(ctx context.Context) (map[string]int, error) {
	return p.inner.FetchBookingAggregates(ctx)
}

func TestCachedProviderMemoizesMovies(t *testing.T) {
	counting := &countingProvider{inner: NewMockProvider()}
	provider := NewCachedProvider(counting, 10, time.Minute)

	first, err := provider.FetchMovie(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := provider.FetchMovie(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, 1, counting.movie, "second lookup should hit the cache")
	assert.Equal(t, first.Title, second.Title)
}

func TestCachedProviderDoesNotCacheMisses(t *testing.T) {
	counting := &countingProvider{inner: NewMockProvider()}
	provider := NewCachedProvider(counting, 10, time.Minute)

	for i := 0; i < 3; i++ {
		movie, err := provider.FetchMovie(context.Background(), "no-such-movie")
		require.NoError(t, err)
		assert.Nil(t, movie)
	}

	assert.Equal(t, 3, counting.movie, "misses should re-check upstream every time")
}

func TestCachedProviderReturnsCopies(t *testing.T) {
	provider := NewCachedProvider(NewMockProvider(), 10, time.Minute)

	first, err := provider.FetchMovie(context.Background(), "1")
	require.NoError(t, err)
	first.Title = "mutated"

	second, err := provider.FetchMovie(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "The Dark Knight", second.Title)
}

func TestCachedProviderPassesThroughCatalog(t *testing.T) {
	provider := NewCachedProvider(NewMockProvider(), 10, time.Minute)

	catalog := provider.FetchCatalog(context.Background())
	assert.True(t, catalog.Available)
	assert.Len(t, catalog.Movies, 5)

	counts, err := provider.FetchBookingAggregates(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, counts)
}
