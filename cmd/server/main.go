// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

// Command server runs the movie recommendation HTTP service.
//
// Configuration is loaded from defaults, an optional YAML file (CONFIG_PATH
// or ./config.yaml), and environment variables. With firestore disabled the
// service runs fully self-contained on the built-in sample catalog.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/api"
	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/config"
	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/logging"
	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/metrics"
	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/recommend"
	"github.com/louispang03/Recommendation-cinema-movie-booking-system/internal/store"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	logger.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Bool("firestore", cfg.Firestore.Enabled).
		Msg("starting movie recommendation service")

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	provider := buildProvider(cfg)
	engine, err := recommend.NewEngine(cfg.EngineConfig(), provider, store.SampleCatalog(), logger)
	if err != nil {
		return fmt.Errorf("failed to build recommendation engine: %w", err)
	}

	handler := api.NewHandler(engine, logger)
	router := api.NewRouter(handler, &api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go trackUptime(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info().Msg("shutdown complete")
	return nil
}

// buildProvider assembles the data provider chain: Firestore client behind
// a circuit breaker and a movie cache, or the sample catalog when the store
// is disabled.
func buildProvider(cfg *config.Config) recommend.DataProvider {
	logger := logging.Logger()

	if !cfg.Firestore.Enabled {
		logger.Info().Msg("document store disabled, serving sample catalog")
		return store.NewMockProvider()
	}

	firestore := store.NewFirestoreClient(cfg.Firestore.BaseURL, cfg.Firestore.Timeout, logger)
	breaker := store.NewBreakerProvider(firestore, logger)
	return store.NewCachedProvider(breaker, cfg.Cache.Capacity, cfg.Cache.TTL)
}

// trackUptime updates the uptime gauge every 15 seconds until ctx is done.
func trackUptime(ctx context.Context) {
	start := time.Now()
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.AppUptime.Set(time.Since(start).Seconds())
		}
	}
}
