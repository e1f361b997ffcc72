// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package provider

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/affectus/internal/ensemble"
	"github.com/tomtom215/affectus/internal/metrics"
)

// Ensure Breaker implements ensemble.Provider
var _ ensemble.Provider = (*Breaker)(nil)

// Breaker wraps a provider with circuit breaker protection so an
// unavailable or slow classifier service cannot drag every suggestion
// request to its timeout.
//
// DETERMINISM NOTE: The circuit breaker uses real time (via sony/gobreaker)
// for its interval and timeout calculations. The timing determines when to
// recover from failures, not data integrity; unit tests should exercise the
// wrapped provider directly.
type Breaker struct {
	inner ensemble.Provider
	cb    *gobreaker.CircuitBreaker[*ensemble.Result]
	name  string
}

// NewBreaker wraps inner with a circuit breaker.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBreaker(inner ensemble.Provider, logger zerolog.Logger) *Breaker {
	name := inner.Name()
	log := logger.With().Str("component", "breaker").Str("provider", name).Logger()

	// Initialize circuit breaker state metrics
	metrics.ProviderBreakerState.WithLabelValues(name).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[*ensemble.Result](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,               // Allow 3 concurrent requests in half-open state
		Interval:    time.Minute,     // Reset counts after 1 minute in closed state
		Timeout:     2 * time.Minute, // Wait 2 minutes before transitioning from open to half-open

		// ReadyToTrip determines when to open the circuit
		// Opens when failure rate >= 60% with minimum 10 requests
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false // Need at least 10 requests for statistical significance
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				log.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening provider circuit")
			}

			return shouldTrip
		},

		// OnStateChange is called whenever the circuit breaker changes state
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			log.Info().Str("from", fromStr).Str("to", toStr).Msg("provider circuit state transition")

			metrics.ProviderBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.ProviderBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &Breaker{
		inner: inner,
		cb:    cb,
		name:  name,
	}
}

// Name identifies this provider in ensemble weights.
func (b *Breaker) Name() string {
	return b.name
}

// State reports the current circuit state for health reporting.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Suggest forwards to the wrapped provider under circuit breaker
// protection. Rejections while the circuit is open return
// gobreaker.ErrOpenState without touching the wrapped provider.
func (b *Breaker) Suggest(ctx context.Context, q ensemble.Query, limit int) (*ensemble.Result, error) {
	start := time.Now()

	result, err := b.cb.Execute(func() (*ensemble.Result, error) {
		return b.inner.Suggest(ctx, q, limit)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			// Circuit is open or too many concurrent requests in half-open state
			metrics.RecordProviderRequest(b.name, "rejected")
			return nil, err
		}

		metrics.RecordProviderRequest(b.name, "failure")
		metrics.RecordProviderDuration(b.name, time.Since(start))
		return nil, err
	}

	metrics.RecordProviderRequest(b.name, "success")
	metrics.RecordProviderDuration(b.name, time.Since(start))

	return result, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
