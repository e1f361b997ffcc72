// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package personalize

import "fmt"

// Config controls preference storage and personalized re-ranking.
type Config struct {
	// StorePath is the JSON file preferences are persisted to.
	// Default: data/user_preferences.json.
	StorePath string `json:"store_path"`

	// DecayRate is the exponential decay rate per elapsed day applied
	// to preference scores. Default: 0.1.
	DecayRate float64 `json:"decay_rate"`

	// Weight is the personalization weight in [0, 1]: 0 leaves the
	// ensemble ranking untouched, 1 ranks purely from user history.
	// Default: 0.4.
	Weight float64 `json:"weight"`

	// MaxHistoryDays is the retention window for interaction history.
	// Default: 30.
	MaxHistoryDays int `json:"max_history_days"`

	// FlushEvery persists the store after this many recorded
	// interactions per user. Default: 5.
	FlushEvery int `json:"flush_every"`
}

// DefaultConfig returns the default personalization configuration
func DefaultConfig() *Config {
	return &Config{
		StorePath:      "data/user_preferences.json",
		DecayRate:      0.1,
		Weight:         0.4,
		MaxHistoryDays: 30,
		FlushEvery:     5,
	}
}

// Validate checks the configuration for correctness
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("store_path must not be empty")
	}
	if c.DecayRate < 0 {
		return fmt.Errorf("decay_rate must not be negative, got %f", c.DecayRate)
	}
	if c.Weight < 0 || c.Weight > 1 {
		return fmt.Errorf("weight must be in [0, 1], got %f", c.Weight)
	}
	if c.MaxHistoryDays < 1 {
		return fmt.Errorf("max_history_days must be at least 1, got %d", c.MaxHistoryDays)
	}
	if c.FlushEvery < 1 {
		return fmt.Errorf("flush_every must be at least 1, got %d", c.FlushEvery)
	}
	return nil
}
