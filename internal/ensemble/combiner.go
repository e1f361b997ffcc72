// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package ensemble

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/affectus/internal/emotion"
)

// ErrUnknownMethod is returned when a request names a combination
// method that is neither "voting" nor "weighted".
var ErrUnknownMethod = errors.New("unknown combination method")

// Query is the per-request input handed to each provider.
type Query struct {
	// Text is the cleaned input text. Providers that infer from text
	// use it; label-mapping providers ignore it.
	Text string

	// Emotion is an optional emotion label detected upstream of this
	// service. Label-mapping providers use it; inference providers
	// ignore it. Empty when the caller supplied no hint.
	Emotion emotion.Emotion
}

// Request is one combined-suggestion request.
type Request struct {
	// Text is the cleaned input text.
	Text string

	// Emotion is an optional upstream-detected emotion hint.
	Emotion emotion.Emotion

	// TopK is the requested suggestion count. Zero or negative selects
	// the configured default; values above the maximum are clamped.
	TopK int

	// Method is the combination method. Empty selects the configured
	// default.
	Method string
}

// Provider produces emoji candidates for a query.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Name identifies the provider. Weights are looked up by this name,
	// so it must match a field of ProviderWeights to contribute.
	Name() string

	// Suggest returns up to limit emoji candidates for the query,
	// ranked best first.
	Suggest(ctx context.Context, q Query, limit int) (*Result, error)
}

// Result holds one provider's candidates plus optional classification detail.
type Result struct {
	// Emojis is the ranked candidate list, best first.
	Emojis []string

	// Emotion is the classified emotion for providers that classify.
	// Empty when the provider does not classify.
	Emotion emotion.Emotion

	// Confidence is the classification confidence in [0, 1].
	Confidence float64

	// MatchedKeywords lists the keywords that produced the candidates,
	// for providers that match lexically.
	MatchedKeywords []string
}

// Details describes how a combined suggestion list was assembled.
type Details struct {
	// Text is the input text.
	Text string

	// ProviderEmojis maps provider name to that provider's candidate
	// list. Failed providers are absent.
	ProviderEmojis map[string][]string

	// FinalSuggestions is the combined ranked list.
	FinalSuggestions []string

	// DetectedEmotion is the highest-confidence classification reported
	// by any provider, or empty if none classified.
	DetectedEmotion emotion.Emotion

	// Confidence is the confidence of DetectedEmotion.
	Confidence float64

	// Method is the combination method that produced FinalSuggestions.
	Method string

	// MatchedKeywords aggregates keyword matches across providers.
	MatchedKeywords []string
}

// Combiner merges per-provider emoji suggestions into a single ranked
// list. It is safe for concurrent use.
type Combiner struct {
	config *Config
	logger zerolog.Logger

	provMu    sync.RWMutex
	providers []Provider
}

// NewCombiner creates a new suggestion combiner.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCombiner(cfg *Config, logger zerolog.Logger) (*Combiner, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Combiner{
		config:    cfg,
		logger:    logger.With().Str("component", "ensemble").Logger(),
		providers: make([]Provider, 0),
	}, nil
}

// Register adds a provider to the ensemble. Registration order defines
// tie-breaking order during combination.
func (c *Combiner) Register(p Provider) {
	c.provMu.Lock()
	defer c.provMu.Unlock()

	c.providers = append(c.providers, p)
	c.logger.Info().
		Str("provider", p.Name()).
		Msg("registered provider")
}

// Suggest returns the top k combined emoji suggestions for text.
//
// A k <= 0 falls back to the configured default and k above the
// configured maximum is clamped. An empty method falls back to the
// configured default. Provider failures are logged and skipped; when no
// provider produces a usable candidate, the shared fallback list is
// returned truncated to k.
func (c *Combiner) Suggest(ctx context.Context, text string, topK int, method string) ([]string, error) {
	details, err := c.Combine(ctx, Request{Text: text, TopK: topK, Method: method})
	if err != nil {
		return nil, err
	}
	return details.FinalSuggestions, nil
}

// Combine runs the full ensemble for one request and returns the
// per-provider breakdown alongside the final list.
func (c *Combiner) Combine(ctx context.Context, req Request) (*Details, error) {
	topK := c.clampTopK(req.TopK)

	method, err := c.resolveMethod(req.Method)
	if err != nil {
		return nil, err
	}

	query := Query{Text: req.Text, Emotion: req.Emotion}
	results := c.runProviders(ctx, query, topK, c.getProviders())
	weights := c.config.Weights.Normalize().ToMap()

	var final []string
	switch method {
	case MethodVoting:
		final = c.combineByVote(results, weights, topK)
	case MethodWeighted:
		final = c.combineByWeight(results, weights, topK)
	}

	if len(final) == 0 {
		final = truncate(emotion.Fallback(), topK)
	}

	return c.buildDetails(req.Text, method, final, results), nil
}

// Weights returns the normalized provider weights keyed by provider name.
func (c *Combiner) Weights() map[string]float64 {
	return c.config.Weights.Normalize().ToMap()
}

// ProviderNames returns registered provider names in registration order.
func (c *Combiner) ProviderNames() []string {
	c.provMu.RLock()
	defer c.provMu.RUnlock()

	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

func (c *Combiner) getProviders() []Provider {
	c.provMu.RLock()
	defer c.provMu.RUnlock()
	return c.providers
}

func (c *Combiner) clampTopK(k int) int {
	if k <= 0 {
		return c.config.DefaultTopK
	}
	if k > c.config.MaxTopK {
		return c.config.MaxTopK
	}
	return k
}

func (c *Combiner) resolveMethod(method string) (string, error) {
	if method == "" {
		return c.config.DefaultMethod, nil
	}
	if method != MethodVoting && method != MethodWeighted {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	return method, nil
}

// provResult holds the result of a single provider call.
type provResult struct {
	name   string
	result *Result
	err    error
}

// runProviders calls all providers in parallel.
func (c *Combiner) runProviders(ctx context.Context, q Query, topK int, providers []Provider) []provResult {
	results := make([]provResult, len(providers))
	var wg sync.WaitGroup

	for i, p := range providers {
		wg.Add(1)
		go func(idx int, prov Provider) {
			defer wg.Done()
			results[idx] = c.runSingleProvider(ctx, q, topK, prov)
		}(i, p)
	}

	wg.Wait()
	return results
}

// runSingleProvider calls one provider under the configured timeout.
func (c *Combiner) runSingleProvider(ctx context.Context, q Query, topK int, prov Provider) provResult {
	provCtx, cancel := context.WithTimeout(ctx, c.config.ProviderTimeout)
	defer cancel()

	res, err := prov.Suggest(provCtx, q, topK)
	return provResult{name: prov.Name(), result: res, err: err}
}

// combineByVote counts occurrences of each candidate across provider
// lists and ranks by count. Ties keep first-appearance order, scanning
// providers in registration order.
func (c *Combiner) combineByVote(results []provResult, weights map[string]float64, topK int) []string {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, res := range results {
		if !c.shouldUseResult(res, weights) {
			continue
		}

		for _, e := range res.result.Emojis {
			if _, seen := counts[e]; !seen {
				order = append(order, e)
			}
			counts[e]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	return truncate(order, topK)
}

// combineByWeight scores each candidate as weight * (L-i)/L for its
// zero-based position i in a provider list of length L, summed across
// providers. Ties keep first-appearance order, scanning providers in
// registration order.
func (c *Combiner) combineByWeight(results []provResult, weights map[string]float64, topK int) []string {
	scores := make(map[string]float64)
	order := make([]string, 0)

	for _, res := range results {
		if !c.shouldUseResult(res, weights) {
			continue
		}

		weight := weights[res.name]
		listLen := float64(len(res.result.Emojis))
		for i, e := range res.result.Emojis {
			if _, seen := scores[e]; !seen {
				order = append(order, e)
			}
			scores[e] += weight * (listLen - float64(i)) / listLen
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	return truncate(order, topK)
}

// shouldUseResult checks if a provider result should be combined.
// A zero or missing weight disables the provider's contribution.
func (c *Combiner) shouldUseResult(res provResult, weights map[string]float64) bool {
	if res.err != nil {
		c.logger.Warn().
			Str("provider", res.name).
			Err(res.err).
			Msg("provider suggestion failed")
		return false
	}

	if res.result == nil || len(res.result.Emojis) == 0 {
		return false
	}

	return weights[res.name] > 0
}

// buildDetails assembles the per-provider breakdown for a request.
func (c *Combiner) buildDetails(text, method string, final []string, results []provResult) *Details {
	details := &Details{
		Text:             text,
		ProviderEmojis:   make(map[string][]string, len(results)),
		FinalSuggestions: final,
		Method:           method,
	}

	for _, res := range results {
		if res.err != nil || res.result == nil {
			continue
		}

		details.ProviderEmojis[res.name] = res.result.Emojis

		if len(res.result.MatchedKeywords) > 0 {
			details.MatchedKeywords = append(details.MatchedKeywords, res.result.MatchedKeywords...)
		}

		if res.result.Emotion != "" {
			if details.DetectedEmotion == "" || res.result.Confidence > details.Confidence {
				details.DetectedEmotion = res.result.Emotion
				details.Confidence = res.result.Confidence
			}
		}
	}

	return details
}

func truncate(list []string, k int) []string {
	if len(list) <= k {
		return list
	}
	return list[:k]
}
