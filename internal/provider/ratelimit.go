// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package provider

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/tomtom215/affectus/internal/ensemble"
	"github.com/tomtom215/affectus/internal/metrics"
)

// ErrRateLimited is returned when the outbound limiter rejects a call.
var ErrRateLimited = errors.New("provider rate limit exceeded")

// Ensure RateLimited implements ensemble.Provider
var _ ensemble.Provider = (*RateLimited)(nil)

// RateLimited wraps a provider with a token bucket on outbound calls.
// Rejections fail fast instead of waiting for a token, so a burst of
// suggestion traffic degrades to the remaining providers rather than
// queueing behind the limiter.
type RateLimited struct {
	inner   ensemble.Provider
	limiter *rate.Limiter
	name    string
}

// NewRateLimited wraps inner with a limiter allowing reqsPerSecond
// sustained calls and bursts of burst. A non-positive reqsPerSecond
// disables limiting.
func NewRateLimited(inner ensemble.Provider, reqsPerSecond float64, burst int) *RateLimited {
	limit := rate.Inf
	if reqsPerSecond > 0 {
		limit = rate.Limit(reqsPerSecond)
	}
	if burst < 1 {
		burst = 1
	}

	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(limit, burst),
		name:    inner.Name(),
	}
}

// Name identifies this provider in ensemble weights.
func (r *RateLimited) Name() string {
	return r.name
}

// Suggest forwards to the wrapped provider when a token is available and
// rejects with ErrRateLimited otherwise.
func (r *RateLimited) Suggest(ctx context.Context, q ensemble.Query, limit int) (*ensemble.Result, error) {
	if !r.limiter.Allow() {
		metrics.ProviderRateLimitRejections.WithLabelValues(r.name).Inc()
		return nil, fmt.Errorf("%w: %s", ErrRateLimited, r.name)
	}

	return r.inner.Suggest(ctx, q, limit)
}
