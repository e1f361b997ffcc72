// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package api

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/affectus/internal/emotion"
	"github.com/tomtom215/affectus/internal/ensemble"
	"github.com/tomtom215/affectus/internal/models"
)

// Root handles service discovery requests
//
// @Summary Get service information
// @Description Returns the service name, version, and the main endpoints it exposes
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ServiceInfo} "Service information"
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	info := models.ServiceInfo{
		Service:     serviceName,
		Version:     Version,
		Description: "Ensemble emoji suggestion service with per-user personalization, offline evaluation, and production monitoring",
		Endpoints: []string{
			"GET  /health",
			"GET  /api/v1/emotions",
			"GET  /api/v1/stats",
			"POST /api/v1/suggest",
			"POST /api/v1/suggest/detailed",
			"POST /api/v1/suggest/batch",
			"POST /api/v1/feedback",
			"GET  /api/v1/users/{id}/stats",
			"GET  /api/v1/users/{id}/history",
			"DELETE /api/v1/users/{id}",
			"POST /api/v1/evaluation/run",
			"POST /api/v1/evaluation/compare",
			"POST /api/v1/evaluation/agreement",
			"POST /api/v1/monitoring/daily/{date}",
			"GET  /api/v1/monitoring/weekly",
			"GET  /api/v1/monitoring/drift",
			"GET  /api/v1/monitoring/status",
			"GET  /metrics",
			"GET  /swagger/index.html",
		},
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   info,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Health handles health check requests
//
// @Summary Get service health status
// @Description Returns service health including the circuit state of each remote suggestion provider and uptime. The service degrades rather than fails when provider circuits open: the keyword fallback keeps suggestions available.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthResponse} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	status := "healthy"
	var providers map[string]string
	if len(h.breakers) > 0 {
		providers = make(map[string]string, len(h.breakers))
		for _, b := range h.breakers {
			providers[b.Name()] = b.State().String()
			if b.State() == gobreaker.StateOpen {
				status = "degraded"
			}
		}
	}

	health := models.HealthResponse{
		Status:    status,
		Version:   Version,
		Providers: providers,
		Uptime:    time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Emotions handles emotion vocabulary requests
//
// @Summary List supported emotions
// @Description Returns the closed emotion vocabulary with each emotion's ranked emoji list, strongest association first
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.EmotionsResponse} "Emotion catalog"
// @Router /api/v1/emotions [get]
func (h *Handler) Emotions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	all := emotion.All()
	entries := make([]models.EmotionCatalogEntry, 0, len(all))
	for _, e := range all {
		entries = append(entries, models.EmotionCatalogEntry{
			Emotion: e.String(),
			Emojis:  emotion.Emojis(e),
		})
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.EmotionsResponse{
			Emotions: entries,
			Count:    len(entries),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Stats handles service statistics requests
//
// @Summary Get service statistics
// @Description Returns the suggester configuration (methods, normalized provider weights, catalog size) and stored personalization volume
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ServiceStats} "Service statistics"
// @Router /api/v1/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	stats := models.ServiceStats{
		Emotions:      len(emotion.All()),
		CatalogEmojis: catalogEmojiCount(),
		Methods:       []string{ensemble.MethodVoting, ensemble.MethodWeighted},
		Weights:       h.combiner.Weights(),
	}
	if h.personalizer != nil {
		users, _, events := h.personalizer.Counts()
		stats.Users = users
		stats.TotalInteractions = events
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   stats,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// catalogEmojiCount counts distinct emojis across the whole catalog.
// Emojis shared between emotions are counted once.
func catalogEmojiCount() int {
	seen := make(map[string]struct{})
	for _, e := range emotion.All() {
		for _, emoji := range emotion.Emojis(e) {
			seen[emoji] = struct{}{}
		}
	}
	return len(seen)
}
