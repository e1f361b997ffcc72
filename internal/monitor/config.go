// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package monitor

import "fmt"

// Config controls prediction logging and drift detection.
type Config struct {
	// LogPath is the newline-delimited JSON file predictions are
	// appended to. Default: data/logs/predictions.jsonl.
	LogPath string `json:"log_path"`

	// MetricsPath is the JSON file aggregated snapshots, reports, and
	// alerts are persisted to. Default: data/logs/metrics.json.
	MetricsPath string `json:"metrics_path"`

	// BufferSize is the number of buffered predictions that triggers a
	// flush to the log. Default: 10.
	BufferSize int `json:"buffer_size"`

	// DriftThreshold is the relative day-over-day change in a monitored
	// metric that raises a drift alert. Default: 0.15.
	DriftThreshold float64 `json:"drift_threshold"`
}

// DefaultConfig returns the default monitoring configuration
func DefaultConfig() *Config {
	return &Config{
		LogPath:        "data/logs/predictions.jsonl",
		MetricsPath:    "data/logs/metrics.json",
		BufferSize:     10,
		DriftThreshold: 0.15,
	}
}

// Validate checks the configuration for correctness
func (c *Config) Validate() error {
	if c.LogPath == "" {
		return fmt.Errorf("log_path must not be empty")
	}
	if c.MetricsPath == "" {
		return fmt.Errorf("metrics_path must not be empty")
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer_size must be at least 1, got %d", c.BufferSize)
	}
	if c.DriftThreshold <= 0 {
		return fmt.Errorf("drift_threshold must be positive, got %f", c.DriftThreshold)
	}
	return nil
}
