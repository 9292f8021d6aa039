// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package store

import (
	"context"
	"time"

	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/cache"
	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/metrics"
	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/recommend"
)

// movieCacheType labels movie cache metrics.
const movieCacheType = "movie"

// Ensure CachedProvider implements recommend.DataProvider.
var _ recommend.DataProvider = (*CachedProvider)(nil)

// CachedProvider memoizes FetchMovie results in a bounded LRU with TTL.
// Single-movie lookups dominate profile building (one per booking), so they
// are the only cached path. Catalog and aggregate fetches pass through.
type CachedProvider struct {
	inner  recommend.DataProvider
	movies *cache.LRU[recommend.Movie]
}

// NewCachedProvider creates a caching provider over inner. Non-positive
// capacity or TTL fall back to the cache defaults.
func NewCachedProvider(inner recommend.DataProvider, capacity int, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner:  inner,
		movies: cache.NewLRU[recommend.Movie](capacity, ttl),
	}
}

// FetchMovie returns a cached movie when present, otherwise delegates to the
// inner provider. Only successful lookups are cached; a missing movie is
// re-checked on every call so newly added catalog entries appear promptly.
func (p *CachedProvider) FetchMovie(ctx context.Context, id string) (*recommend.Movie, error) {
	if movie, ok := p.movies.Get(id); ok {
		metrics.RecordCacheAccess(movieCacheType, true)
		return &movie, nil
	}
	metrics.RecordCacheAccess(movieCacheType, false)

	movie, err := p.inner.FetchMovie(ctx, id)
	if err != nil || movie == nil {
		return movie, err
	}

	p.movies.Set(id, *movie)
	metrics.CacheSize.WithLabelValues(movieCacheType).Set(float64(p.movies.Len()))
	return movie, nil
}

// FetchCatalog delegates to the inner provider.
func (p *CachedProvider) FetchCatalog(ctx context.Context) recommend.CatalogResult {
	return p.inner.FetchCatalog(ctx)
}

// FetchBookingAggregates delegates to the inner provider.
func (p *CachedProvider) FetchBookingAggregates(ctx context.Context) (map[string]int, error) {
	return p.inner.FetchBookingAggregates(ctx)
}
