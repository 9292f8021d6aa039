// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments the recommendation service with the Prometheus client
library, exposing metrics for request throughput, pipeline outcomes, catalog
store performance, and cache efficiency.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Recommendation Metrics:
  - recommendations_total: Pipeline runs (counter)
    Labels: strategy (personalized, similar_movies, new_user)
  - recommendation_duration_seconds: Pipeline latency (histogram)
    Labels: strategy
  - recommendation_fallbacks_total: Responses served from a fallback tier (counter)
    Labels: tier (most_booked, generic_popular)
  - recommendation_candidate_count: Candidates scored per request (histogram)

Catalog Store Metrics:
  - store_request_duration_seconds: Firestore request latency (histogram)
    Labels: operation (fetch_movie, fetch_catalog, fetch_bookings)
  - store_request_errors_total: Failed store requests (counter)
    Labels: operation, error_type
  - store_documents_decoded_total / store_documents_skipped_total: decode outcomes

Cache Metrics:
  - cache_hits_total, cache_misses_total, cache_entries
    Labels: cache_type (movie, catalog)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge, 0=closed 1=half-open 2=open)
    Labels: name
  - circuit_breaker_requests_total: Requests through the breaker (counter)
    Labels: name, result (success, failure, rejected)

# Usage Example

	import (
	    "github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	func main() {
	    http.Handle("/metrics", promhttp.Handler())

	    metrics.RecordAPIRequest("POST", "/api/v1/recommend", "200", 23*time.Millisecond)
	    metrics.RecordRecommendation("personalized", 5*time.Millisecond)
	    metrics.RecordFallback("most_booked")
	}

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally.

# Cardinality Management

To prevent high cardinality issues:

  - Endpoint labels use the route pattern, never raw paths with IDs
  - Error type labels are truncated to 50 characters
  - User and movie identifiers are never used as labels
*/
package metrics
