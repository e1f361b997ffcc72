// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

// Package main is the entry point for the Affectus server application.
//
// Affectus is a self-hosted emoji suggestion service that ranks emoji
// candidates for input text by combining multiple suggestion providers,
// re-ranks them from per-user interaction history, and monitors its own
// prediction quality for drift.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Logging: zerolog with JSON/console output modes
//  3. Personalization: JSON-backed preference store with decay-weighted re-ranking
//  4. Monitor: Prediction logging, daily rollups, and drift detection
//  5. Ensemble: Suggestion combiner with keyword + optional remote providers
//  6. Supervisor Tree: Suture v4 process supervision
//  7. HTTP Server: REST API with Swagger documentation
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (AFFECTUS_* prefix)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// The keyword provider is always available. Remote classifier providers are
// optional and enabled individually:
//   - Sentiment: AFFECTUS_SENTIMENT_ENABLED=true, AFFECTUS_SENTIMENT_URL
//   - Semantic: AFFECTUS_SEMANTIC_ENABLED=true, AFFECTUS_SEMANTIC_URL
//
// Remote providers are guarded by circuit breakers and optional outbound
// rate limits; when one fails the ensemble degrades to the remaining
// providers instead of failing the request.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Flushes the prediction log and preference store
//
// # Example Usage
//
// Keyword-only mode (no remote classifiers):
//
//	./affectus
//
// With a sentiment classifier service:
//
//	export AFFECTUS_SENTIMENT_ENABLED=true
//	export AFFECTUS_SENTIMENT_URL=http://sentiment:8000/suggest
//	./affectus
//
// With both classifiers and custom ensemble weights:
//
//	export AFFECTUS_SENTIMENT_ENABLED=true
//	export AFFECTUS_SENTIMENT_URL=http://sentiment:8000/suggest
//	export AFFECTUS_SEMANTIC_ENABLED=true
//	export AFFECTUS_SEMANTIC_URL=http://semantic:8000/suggest
//	export AFFECTUS_ENSEMBLE_WEIGHT_KEYWORD=0.2
//	export AFFECTUS_ENSEMBLE_WEIGHT_SENTIMENT=0.4
//	export AFFECTUS_ENSEMBLE_WEIGHT_SEMANTIC=0.4
//	./affectus
//
// Docker:
//
//	docker run -d \
//	  -e AFFECTUS_SENTIMENT_ENABLED=true \
//	  -e AFFECTUS_SENTIMENT_URL=http://sentiment:8000/suggest \
//	  -p 8000:8000 \
//	  ghcr.io/tomtom215/affectus
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/affectus/docs" // Import generated swagger docs
	"github.com/tomtom215/affectus/internal/api"
	"github.com/tomtom215/affectus/internal/config"
	"github.com/tomtom215/affectus/internal/ensemble"
	"github.com/tomtom215/affectus/internal/logging"
	"github.com/tomtom215/affectus/internal/monitor"
	"github.com/tomtom215/affectus/internal/personalize"
	"github.com/tomtom215/affectus/internal/provider"
	"github.com/tomtom215/affectus/internal/supervisor"
	"github.com/tomtom215/affectus/internal/supervisor/services"
)

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Affectus with supervisor tree")

	logging.Info().
		Str("default_method", cfg.Ensemble.DefaultMethod).
		Str("store_path", cfg.Personalization.StorePath).
		Bool("sentiment_enabled", cfg.Providers.Sentiment.Enabled).
		Bool("semantic_enabled", cfg.Providers.Semantic.Enabled).
		Msg("Configuration loaded")

	// Initialize the preference store and personalizer. Preferences persist
	// across restarts in a JSON file, so startup restores prior history.
	persCfg := &personalize.Config{
		StorePath:      cfg.Personalization.StorePath,
		DecayRate:      cfg.Personalization.DecayRate,
		Weight:         cfg.Personalization.Weight,
		MaxHistoryDays: cfg.Personalization.MaxHistoryDays,
		FlushEvery:     cfg.Personalization.FlushEvery,
	}
	store, err := personalize.NewStore(persCfg, personalize.SystemClock(), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize preference store")
	}
	personalizer, err := personalize.NewPersonalizer(persCfg, store, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize personalizer")
	}
	defer func() {
		if err := personalizer.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing preference store")
		}
	}()
	users, prefs, events := personalizer.Counts()
	logging.Info().
		Int("users", users).
		Int("preferences", prefs).
		Int("events", events).
		Msg("Preference store initialized")

	// Initialize the prediction monitor. Predictions buffer in memory and
	// flush to a newline-delimited JSON log; daily rollups and drift checks
	// run from the supervised maintenance service.
	monCfg := &monitor.Config{
		LogPath:        cfg.Monitor.LogPath,
		MetricsPath:    cfg.Monitor.MetricsPath,
		BufferSize:     cfg.Monitor.BufferSize,
		DriftThreshold: cfg.Monitor.DriftThreshold,
	}
	mon, err := monitor.NewMonitor(monCfg, monitor.SystemClock(), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize prediction monitor")
	}
	defer func() {
		if err := mon.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing prediction monitor")
		}
	}()
	logging.Info().Msg("Prediction monitor initialized")

	// Initialize the suggestion combiner with configured weights
	ensCfg := &ensemble.Config{
		Weights: ensemble.ProviderWeights{
			Keyword:   cfg.Ensemble.Weights.Keyword,
			Sentiment: cfg.Ensemble.Weights.Sentiment,
			Semantic:  cfg.Ensemble.Weights.Semantic,
		},
		DefaultTopK:     cfg.Ensemble.DefaultTopK,
		MaxTopK:         cfg.Ensemble.MaxTopK,
		DefaultMethod:   cfg.Ensemble.DefaultMethod,
		ProviderTimeout: cfg.Ensemble.ProviderTimeout,
	}
	combiner, err := ensemble.NewCombiner(ensCfg, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize suggestion combiner")
	}

	// The keyword provider is always available and keeps the service
	// working when every remote classifier is down or disabled.
	combiner.Register(provider.NewKeyword())
	logging.Info().Msg("Keyword provider registered")

	// Register optional remote classifiers behind circuit breakers
	breakers := registerRemoteProviders(cfg, combiner)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create structured logger for supervisor using our slog adapter
	// This bridges zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	// Create supervisor tree
	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(combiner, personalizer, mon, cfg)
	handler.SetBreakers(breakers)

	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	// Data layer services
	tree.AddDataService(services.NewCleanupService(personalizer, services.CleanupServiceConfig{
		CleanupInterval: cfg.Maintenance.CleanupInterval,
	}, logging.Logger()))
	logging.Info().
		Dur("interval", cfg.Maintenance.CleanupInterval).
		Msg("Preference cleanup service added to supervisor tree")

	// Monitoring layer services
	tree.AddMonitoringService(services.NewMonitorService(mon, services.MonitorServiceConfig{
		FlushInterval:   cfg.Maintenance.FlushInterval,
		RollupInterval:  cfg.Maintenance.RollupInterval,
		RollupOnStartup: true,
	}, logging.Logger()))
	logging.Info().
		Dur("flush_interval", cfg.Maintenance.FlushInterval).
		Dur("rollup_interval", cfg.Maintenance.RollupInterval).
		Msg("Monitor maintenance service added to supervisor tree")

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// registerRemoteProviders wires the enabled remote classifiers into the
// combiner and returns their circuit breakers for health reporting.
//
// Each enabled provider is wrapped in up to two layers:
//   - Outbound rate limiter (only when a rate limit is configured)
//   - Circuit breaker (always), so a failing classifier trips open and the
//     ensemble degrades to the remaining providers
//
// A provider that fails to construct is logged and skipped rather than
// aborting startup; the keyword provider keeps the service functional.
func registerRemoteProviders(cfg *config.Config, combiner *ensemble.Combiner) []*provider.Breaker {
	remotes := []struct {
		name string
		rc   config.RemoteProviderConfig
	}{
		{name: "sentiment", rc: cfg.Providers.Sentiment},
		{name: "semantic", rc: cfg.Providers.Semantic},
	}

	var breakers []*provider.Breaker

	for _, r := range remotes {
		if !r.rc.Enabled {
			logging.Info().Str("provider", r.name).Msg("Remote provider disabled")
			continue
		}

		remote, err := provider.NewRemote(provider.RemoteConfig{
			Name:    r.name,
			URL:     r.rc.URL,
			Timeout: r.rc.Timeout,
		}, logging.Logger())
		if err != nil {
			logging.Warn().Err(err).Str("provider", r.name).Msg("Failed to create remote provider, skipping")
			continue
		}

		var inner ensemble.Provider = remote
		if r.rc.RateLimit > 0 {
			inner = provider.NewRateLimited(inner, r.rc.RateLimit, r.rc.Burst)
			logging.Info().
				Str("provider", r.name).
				Float64("rate_limit", r.rc.RateLimit).
				Int("burst", r.rc.Burst).
				Msg("Outbound rate limit applied")
		}

		breaker := provider.NewBreaker(inner, logging.Logger())
		combiner.Register(breaker)
		breakers = append(breakers, breaker)

		logging.Info().
			Str("provider", r.name).
			Str("url", r.rc.URL).
			Msg("Remote provider registered with circuit breaker")
	}

	return breakers
}
