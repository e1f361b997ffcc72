// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// PreferenceStore defines the retention interface of the personalization
// layer. This allows the service to work with the personalizer without
// circular imports.
type PreferenceStore interface {
	// Cleanup prunes interactions older than the retention window and
	// returns how many were removed.
	Cleanup() (int, error)
}

// CleanupServiceConfig holds configuration for the preference cleanup service.
type CleanupServiceConfig struct {
	// CleanupOnStartup triggers a prune when the service starts.
	CleanupOnStartup bool

	// CleanupInterval is how often to prune expired interactions.
	CleanupInterval time.Duration
}

// CleanupService prunes expired preference data on a schedule under Suture
// supervision. Without it, decayed interactions would accumulate in the
// store until the process restarts.
type CleanupService struct {
	store  PreferenceStore
	config CleanupServiceConfig
	logger zerolog.Logger
	name   string
}

// NewCleanupService creates a new preference cleanup service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCleanupService(store PreferenceStore, cfg CleanupServiceConfig, logger zerolog.Logger) *CleanupService {
	return &CleanupService{
		store:  store,
		config: cfg,
		logger: logger.With().Str("service", "cleanup").Logger(),
		name:   "preference-cleanup",
	}
}

// Serve implements the suture.Service interface.
// It manages the retention pruning loop for the preference store.
func (s *CleanupService) Serve(ctx context.Context) error {
	if s.config.CleanupInterval <= 0 {
		s.config.CleanupInterval = 24 * time.Hour
	}

	s.logger.Info().
		Bool("cleanup_on_startup", s.config.CleanupOnStartup).
		Dur("cleanup_interval", s.config.CleanupInterval).
		Msg("preference cleanup starting")

	if s.config.CleanupOnStartup {
		s.cleanup()
	}

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("preference cleanup shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.cleanup()
		}
	}
}

// cleanup performs one retention pass. Failures are logged but never crash
// the service; the next tick retries.
func (s *CleanupService) cleanup() {
	start := time.Now()

	removed, err := s.store.Cleanup()
	if err != nil {
		s.logger.Warn().Err(err).Msg("preference cleanup failed")
		return
	}

	if removed > 0 {
		s.logger.Info().
			Int("removed", removed).
			Dur("duration", time.Since(start)).
			Msg("pruned expired interactions")
	} else {
		s.logger.Debug().Msg("no expired interactions to prune")
	}
}

// String returns the service name for logging.
func (s *CleanupService) String() string {
	return s.name
}
