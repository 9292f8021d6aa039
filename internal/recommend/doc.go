// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

/*
Package recommend implements the movie recommendation engine.

The engine combines three signals into ranked, confidence-annotated
recommendations:

  - Preference profiles aggregated from a user's booking history (genre,
    actor, and director occurrence counts, average rating and runtime).
  - TF-IDF content similarity over movie overviews, genres, keywords, cast,
    and director.
  - Fuzzy genre affinity matching for users without history.

# Strategies

RecommendForUser picks a strategy from the request shape:

  - No resolvable booking history: a new_user result prompting the client
    to collect preferences and call RecommendForNewUser.
  - A target movie ID: similar_movies, ranked by blended similarity
    (0.6 content cosine + 0.4 preference score).
  - Otherwise: personalized, ranked by the raw genre and actor preference
    signal over the catalog.

RecommendForNewUser scores the catalog by fuzzy genre matching and falls
back through a cascade when the match is empty or weak: most-booked movies
from booking aggregates, then the leading catalog movies at a neutral
confidence. Tiers replace each other, never merge.

# Data access

The package imports no other internal packages. Catalog and booking data
arrive through the DataProvider interface; upstream failures degrade (nil
movie, unavailable catalog, empty aggregates) and the engine substitutes
its built-in fallback catalog rather than failing the request.

# Concurrency

One request is one synchronous computation. The engine holds no per-user
state between requests and is safe for concurrent use.
*/
package recommend
