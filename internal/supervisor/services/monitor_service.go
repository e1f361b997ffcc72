// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

// Package services provides Suture service wrappers for various application components.
package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/affectus/internal/monitor"
)

// MonitorEngine defines the subset of the prediction monitor driven by the
// maintenance loop. This allows the service to be tested without touching
// the monitor's backing files.
type MonitorEngine interface {
	// Flush persists buffered prediction entries to the log.
	Flush() error

	// ComputeDailyMetrics aggregates one day of predictions.
	// An empty date selects today.
	ComputeDailyMetrics(date string) (*monitor.DailySnapshot, error)

	// CheckDrift compares today's snapshot against yesterday's.
	CheckDrift() ([]monitor.AlertRecord, error)
}

// MonitorServiceConfig holds configuration for the monitor maintenance service.
type MonitorServiceConfig struct {
	// FlushInterval is how often buffered predictions are written out.
	FlushInterval time.Duration

	// RollupInterval is how often the daily snapshot and drift check run.
	RollupInterval time.Duration

	// RollupOnStartup triggers a rollup when the service starts, so the
	// drift detector has a current-day baseline immediately after boot.
	RollupOnStartup bool
}

// MonitorService drives the prediction monitor's periodic work under Suture
// supervision: flushing the buffered log, and recomputing the daily snapshot
// plus drift alerts on a schedule.
type MonitorService struct {
	engine MonitorEngine
	config MonitorServiceConfig
	logger zerolog.Logger
	name   string
}

// NewMonitorService creates a new monitor maintenance service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMonitorService(engine MonitorEngine, cfg MonitorServiceConfig, logger zerolog.Logger) *MonitorService {
	return &MonitorService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "monitor").Logger(),
		name:   "monitor-maintenance",
	}
}

// Serve implements the suture.Service interface.
// It manages the flush and rollup loops for the prediction monitor.
func (s *MonitorService) Serve(ctx context.Context) error {
	if s.config.FlushInterval <= 0 {
		s.config.FlushInterval = 30 * time.Second
	}
	if s.config.RollupInterval <= 0 {
		s.config.RollupInterval = time.Hour
	}

	s.logger.Info().
		Dur("flush_interval", s.config.FlushInterval).
		Dur("rollup_interval", s.config.RollupInterval).
		Bool("rollup_on_startup", s.config.RollupOnStartup).
		Msg("monitor maintenance starting")

	if s.config.RollupOnStartup {
		s.rollup()
	}

	flushTicker := time.NewTicker(s.config.FlushInterval)
	defer flushTicker.Stop()

	rollupTicker := time.NewTicker(s.config.RollupInterval)
	defer rollupTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("monitor maintenance shutting down")
			// Flush whatever is still buffered so predictions survive restarts
			if err := s.engine.Flush(); err != nil {
				s.logger.Warn().Err(err).Msg("final flush failed")
			}
			return ctx.Err()

		case <-flushTicker.C:
			if err := s.engine.Flush(); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled flush failed")
			}

		case <-rollupTicker.C:
			s.rollup()
		}
	}
}

// rollup recomputes today's snapshot and runs the drift check.
// Failures are logged but never crash the service; the next tick retries.
func (s *MonitorService) rollup() {
	start := time.Now()

	snapshot, err := s.engine.ComputeDailyMetrics("")
	if err != nil {
		s.logger.Warn().Err(err).Msg("daily rollup failed")
		return
	}

	alerts, err := s.engine.CheckDrift()
	if err != nil {
		s.logger.Warn().Err(err).Msg("drift check failed")
		return
	}

	event := s.logger.Info()
	if len(alerts) > 0 {
		event = s.logger.Warn()
	}
	event.
		Str("date", snapshot.Date).
		Int("predictions", snapshot.TotalPredictions).
		Int("drift_alerts", len(alerts)).
		Dur("duration", time.Since(start)).
		Msg("daily rollup complete")
}

// String returns the service name for logging.
func (s *MonitorService) String() string {
	return s.name
}
