// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package ensemble

import (
	"fmt"
	"time"
)

// Combination method identifiers accepted by Suggest.
const (
	// MethodVoting counts candidate occurrences across provider lists.
	MethodVoting = "voting"

	// MethodWeighted scores candidates by provider weight and rank position.
	MethodWeighted = "weighted"
)

// Config contains all configuration for the suggestion combiner.
type Config struct {
	// Weights defines the relative contribution of each provider.
	// Weights are normalized at runtime, so they don't need to sum to 1.0.
	Weights ProviderWeights `json:"weights"`

	// DefaultTopK is the suggestion count used when a request passes k <= 0.
	// Default: 3.
	DefaultTopK int `json:"default_top_k"`

	// MaxTopK caps the suggestion count for a single request.
	// Default: 10.
	MaxTopK int `json:"max_top_k"`

	// DefaultMethod is the combination method used when a request passes
	// an empty method. Default: "weighted".
	DefaultMethod string `json:"default_method"`

	// ProviderTimeout bounds each provider call.
	// Default: 2s.
	ProviderTimeout time.Duration `json:"provider_timeout"`
}

// ProviderWeights defines the relative contribution of each provider.
type ProviderWeights struct {
	// Keyword is the weight for the keyword-matching provider.
	Keyword float64 `json:"keyword"`

	// Sentiment is the weight for the emotion-classification provider.
	Sentiment float64 `json:"sentiment"`

	// Semantic is the weight for the semantic-similarity provider.
	Semantic float64 `json:"semantic"`
}

// Normalize returns a copy with weights normalized to sum to 1.0.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ProviderWeights) Normalize() ProviderWeights {
	sum := w.Keyword + w.Sentiment + w.Semantic

	if sum == 0 {
		const equalWeight = 1.0 / 3.0
		return ProviderWeights{
			Keyword:   equalWeight,
			Sentiment: equalWeight,
			Semantic:  equalWeight,
		}
	}

	return ProviderWeights{
		Keyword:   w.Keyword / sum,
		Sentiment: w.Sentiment / sum,
		Semantic:  w.Semantic / sum,
	}
}

// ToMap returns the weights as a string-keyed map.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ProviderWeights) ToMap() map[string]float64 {
	return map[string]float64{
		"keyword":   w.Keyword,
		"sentiment": w.Sentiment,
		"semantic":  w.Semantic,
	}
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: ProviderWeights{
			Keyword:   0.25,
			Sentiment: 0.35,
			Semantic:  0.40,
		},
		DefaultTopK:     3,
		MaxTopK:         10,
		DefaultMethod:   MethodWeighted,
		ProviderTimeout: 2 * time.Second,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.Keyword < 0 || c.Weights.Sentiment < 0 || c.Weights.Semantic < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", c.Weights)
	}
	if c.DefaultTopK < 1 {
		return fmt.Errorf("default_top_k must be positive, got %d", c.DefaultTopK)
	}
	if c.MaxTopK < c.DefaultTopK {
		return fmt.Errorf("max_top_k must be >= default_top_k, got %d < %d", c.MaxTopK, c.DefaultTopK)
	}
	if c.DefaultMethod != MethodVoting && c.DefaultMethod != MethodWeighted {
		return fmt.Errorf("default_method must be %q or %q, got %q", MethodVoting, MethodWeighted, c.DefaultMethod)
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("provider_timeout must be positive, got %v", c.ProviderTimeout)
	}
	return nil
}
