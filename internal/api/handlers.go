// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/affectus/internal/config"
	"github.com/tomtom215/affectus/internal/ensemble"
	"github.com/tomtom215/affectus/internal/monitor"
	"github.com/tomtom215/affectus/internal/personalize"
	"github.com/tomtom215/affectus/internal/provider"
)

// Version is the service version reported by the info and health endpoints.
const Version = "1.0.0"

// serviceName is the canonical service identifier reported by the root endpoint.
const serviceName = "affectus"

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	combiner     *ensemble.Combiner
	personalizer *personalize.Personalizer
	monitor      *monitor.Monitor
	config       *config.Config
	breakers     []*provider.Breaker
	startTime    time.Time
}

// NewHandler creates a new API handler. The personalizer and monitor may be
// nil when their subsystems are disabled; the affected endpoints then report
// service unavailable while suggestion serving keeps working.
func NewHandler(
	combiner *ensemble.Combiner,
	personalizer *personalize.Personalizer,
	mon *monitor.Monitor,
	cfg *config.Config,
) *Handler {
	return &Handler{
		combiner:     combiner,
		personalizer: personalizer,
		monitor:      mon,
		config:       cfg,
		startTime:    time.Now(),
	}
}

// SetBreakers attaches the circuit breakers guarding remote providers so the
// health endpoint can report their states. Called after provider wiring,
// which happens later in startup than handler construction.
func (h *Handler) SetBreakers(breakers []*provider.Breaker) {
	h.breakers = breakers
}

// requirePersonalizer checks that personalization is enabled, responding with
// 503 if not. Returns true if the personalizer is available.
func (h *Handler) requirePersonalizer(w http.ResponseWriter) bool {
	if h.personalizer == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE",
			"Personalization is disabled", nil)
		return false
	}
	return true
}

// requireMonitor checks that monitoring is enabled, responding with 503 if
// not. Returns true if the monitor is available.
func (h *Handler) requireMonitor(w http.ResponseWriter) bool {
	if h.monitor == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE",
			"Monitoring is disabled", nil)
		return false
	}
	return true
}
