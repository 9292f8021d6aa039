// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

/*
firestore.go - Firestore REST API Client

This file implements a REST API client for the Firestore document store
holding the cinema catalog and booking records. It decodes the Firestore
wire value format into domain types.

API Reference: https://firebase.google.com/docs/firestore/reference/rest
*/

package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/metrics"
	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/recommend"
)

// maxCastNames bounds how many cast names are decoded per movie.
const maxCastNames = 5

// Ensure FirestoreClient implements recommend.DataProvider.
var _ recommend.DataProvider = (*FirestoreClient)(nil)

// FirestoreClient provides read access to the Firestore REST API.
// The base URL points at the documents root, e.g.
// https://firestore.googleapis.com/v1/projects/<project>/databases/(default)/documents
type FirestoreClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewFirestoreClient creates a new Firestore REST client.
//
//nolint:gocritic // zerolog.Logger is passed by value per its documented usage
func NewFirestoreClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *FirestoreClient {
	// Normalize URL (remove trailing slash)
	baseURL = strings.TrimSuffix(baseURL, "/")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &FirestoreClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// wireValue is a single Firestore field value. Exactly one member is set.
// Firestore encodes integerValue as a decimal string.
type wireValue struct {
	StringValue  *string    `json:"stringValue,omitempty"`
	IntegerValue *string    `json:"integerValue,omitempty"`
	DoubleValue  *float64   `json:"doubleValue,omitempty"`
	BooleanValue *bool      `json:"booleanValue,omitempty"`
	ArrayValue   *wireArray `json:"arrayValue,omitempty"`
	MapValue     *wireMap   `json:"mapValue,omitempty"`
}

type wireArray struct {
	Values []wireValue `json:"values"`
}

type wireMap struct {
	Fields map[string]wireValue `json:"fields"`
}

// wireDocument is a Firestore document: a resource name plus typed fields.
type wireDocument struct {
	Name   string               `json:"name"`
	Fields map[string]wireValue `json:"fields"`
}

// wireDocumentList is the response body of a collection list request.
type wireDocumentList struct {
	Documents     []wireDocument `json:"documents"`
	NextPageToken string         `json:"nextPageToken"`
}

// stringField returns the field's string value, or the fallback when the
// field is absent or not a string.
func stringField(fields map[string]wireValue, key, fallback string) string {
	if v, ok := fields[key]; ok && v.StringValue != nil {
		return *v.StringValue
	}
	return fallback
}

// numberField returns the field's numeric value, accepting either a
// doubleValue or an integerValue.
func numberField(fields map[string]wireValue, key string, fallback float64) float64 {
	v, ok := fields[key]
	if !ok {
		return fallback
	}
	if v.DoubleValue != nil {
		return *v.DoubleValue
	}
	if v.IntegerValue != nil {
		if n, err := strconv.ParseFloat(*v.IntegerValue, 64); err == nil {
			return n
		}
	}
	return fallback
}

// stringSliceField returns the field's array of string values, skipping
// non-string members.
func stringSliceField(fields map[string]wireValue, key string) []string {
	v, ok := fields[key]
	if !ok || v.ArrayValue == nil {
		return nil
	}
	out := make([]string, 0, len(v.ArrayValue.Values))
	for _, item := range v.ArrayValue.Values {
		if item.StringValue != nil {
			out = append(out, *item.StringValue)
		}
	}
	return out
}

// castNames extracts up to limit actor names from a cast array. Entries are
// either plain strings or credit maps carrying a "name" field.
func castNames(fields map[string]wireValue, key string, limit int) []string {
	v, ok := fields[key]
	if !ok || v.ArrayValue == nil {
		return nil
	}
	var names []string
	for _, item := range v.ArrayValue.Values {
		if len(names) >= limit {
			break
		}
		switch {
		case item.StringValue != nil:
			names = append(names, *item.StringValue)
		case item.MapValue != nil:
			if name := stringField(item.MapValue.Fields, "name", ""); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// documentID returns the document's identifier: the "id" field when stored,
// otherwise the last segment of the resource name.
func documentID(doc wireDocument) string {
	if id := stringField(doc.Fields, "id", ""); id != "" {
		return id
	}
	if idx := strings.LastIndexByte(doc.Name, '/'); idx >= 0 {
		return doc.Name[idx+1:]
	}
	return doc.Name
}

// documentToMovie translates one Firestore movie document into a Movie.
// Every fetch path decodes through this single function. Returns false when
// the document lacks an identifier.
func documentToMovie(doc wireDocument) (recommend.Movie, bool) {
	id := documentID(doc)
	if id == "" {
		return recommend.Movie{}, false
	}

	fields := doc.Fields
	posterPath := stringField(fields, "poster_path", "")
	if posterPath == "" {
		posterPath = stringField(fields, "backdrop_path", "")
	}

	return recommend.Movie{
		ID:           id,
		Title:        stringField(fields, "title", "Unknown"),
		Overview:     stringField(fields, "overview", ""),
		Genres:       stringSliceField(fields, "genres"),
		Keywords:     stringSliceField(fields, "keywords"),
		Cast:         castNames(fields, "cast", maxCastNames),
		ReleaseDate:  stringField(fields, "releaseDate", ""),
		Rating:       numberField(fields, "voteAverage", 0),
		Runtime:      int(numberField(fields, "runtime", 0)),
		Language:     stringField(fields, "originalLanguage", ""),
		Categories:   stringSliceField(fields, "categories"),
		CinemaBrands: stringSliceField(fields, "cinemaBrands"),
		PosterPath:   posterPath,
		BackdropPath: stringField(fields, "backdropPath", ""),
		ImageURL:     stringField(fields, "imageUrl", ""),
	}, true
}

// doRequest performs a GET against the Firestore documents API.
func (c *FirestoreClient) doRequest(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

// FetchMovie retrieves one movie document by ID. Returns (nil, nil) when the
// document does not exist.
func (c *FirestoreClient) FetchMovie(ctx context.Context, id string) (*recommend.Movie, error) {
	start := time.Now()
	movie, err := c.fetchMovie(ctx, id)
	metrics.RecordStoreRequest("fetch_movie", time.Since(start), err)
	return movie, err
}

func (c *FirestoreClient) fetchMovie(ctx context.Context, id string) (*recommend.Movie, error) {
	resp, err := c.doRequest(ctx, "/movies/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("movie request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("movie request returned status %d (failed to read body)", resp.StatusCode)
		}
		return nil, fmt.Errorf("movie request returned status %d: %s", resp.StatusCode, string(body))
	}

	var doc wireDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode movie document: %w", err)
	}

	movie, ok := documentToMovie(doc)
	if !ok {
		metrics.StoreDocumentsSkipped.Inc()
		return nil, nil
	}
	metrics.StoreDocumentsDecoded.Inc()
	return &movie, nil
}

// FetchCatalog retrieves the full movie catalog, following page tokens.
// An unreachable store yields Available=false rather than an error so the
// engine can substitute its fallback catalog.
func (c *FirestoreClient) FetchCatalog(ctx context.Context) recommend.CatalogResult {
	start := time.Now()
	movies, err := c.fetchCatalog(ctx)
	metrics.RecordStoreRequest("fetch_catalog", time.Since(start), err)
	if err != nil {
		c.logger.Warn().Err(err).Msg("catalog fetch failed")
		return recommend.CatalogResult{Available: false}
	}

	c.logger.Info().Int("movies", len(movies)).Msg("catalog fetched")
	return recommend.CatalogResult{Movies: movies, Available: true}
}

func (c *FirestoreClient) fetchCatalog(ctx context.Context) ([]recommend.Movie, error) {
	var movies []recommend.Movie
	pageToken := ""

	for {
		endpoint := "/movies?pageSize=300"
		if pageToken != "" {
			endpoint += "&pageToken=" + url.QueryEscape(pageToken)
		}

		resp, err := c.doRequest(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("catalog request failed: %w", err)
		}

		var list wireDocumentList
		if resp.StatusCode != http.StatusOK {
			body, readErr := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if readErr != nil {
				return nil, fmt.Errorf("catalog request returned status %d (failed to read body)", resp.StatusCode)
			}
			return nil, fmt.Errorf("catalog request returned status %d: %s", resp.StatusCode, string(body))
		}
		if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("failed to decode catalog page: %w", err)
		}
		_ = resp.Body.Close()

		for _, doc := range list.Documents {
			movie, ok := documentToMovie(doc)
			if !ok {
				metrics.StoreDocumentsSkipped.Inc()
				continue
			}
			metrics.StoreDocumentsDecoded.Inc()
			movies = append(movies, movie)
		}

		if list.NextPageToken == "" {
			return movies, nil
		}
		pageToken = list.NextPageToken
	}
}

// FetchBookingAggregates counts bookings per movie across all users.
// Documents missing a movie ID or title are ignored, matching the booking
// schema where both are always written together.
func (c *FirestoreClient) FetchBookingAggregates(ctx context.Context) (map[string]int, error) {
	start := time.Now()
	counts, err := c.fetchBookingAggregates(ctx)
	metrics.RecordStoreRequest("fetch_booking_aggregates", time.Since(start), err)
	return counts, err
}

func (c *FirestoreClient) fetchBookingAggregates(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	pageToken := ""

	for {
		endpoint := "/bookings?pageSize=300"
		if pageToken != "" {
			endpoint += "&pageToken=" + url.QueryEscape(pageToken)
		}

		resp, err := c.doRequest(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("bookings request failed: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			body, readErr := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if readErr != nil {
				return nil, fmt.Errorf("bookings request returned status %d (failed to read body)", resp.StatusCode)
			}
			return nil, fmt.Errorf("bookings request returned status %d: %s", resp.StatusCode, string(body))
		}

		var list wireDocumentList
		if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("failed to decode bookings page: %w", err)
		}
		_ = resp.Body.Close()

		for _, doc := range list.Documents {
			movieID := stringField(doc.Fields, "movieId", "")
			movieTitle := stringField(doc.Fields, "movieTitle", "")
			if movieID == "" || movieTitle == "" {
				metrics.StoreDocumentsSkipped.Inc()
				continue
			}
			counts[movieID]++
		}

		if list.NextPageToken == "" {
			break
		}
		pageToken = list.NextPageToken
	}

	c.logger.Debug().Int("movies", len(counts)).Msg("booking aggregates fetched")
	return counts, nil
}
