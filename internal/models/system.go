// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package models

// HealthResponse reports service liveness and provider readiness.
//
// Providers maps each guarded provider to its circuit state ("closed",
// "half-open", or "open"). Status degrades to "degraded" while any circuit
// is open; the keyword fallback keeps suggestions available regardless.
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Providers map[string]string `json:"providers,omitempty"`
	Uptime    float64           `json:"uptime"`
}

// ServiceInfo describes the running service, returned from the API root.
type ServiceInfo struct {
	Service     string   `json:"service"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Endpoints   []string `json:"endpoints"`
}

// EmotionCatalogEntry pairs an emotion with its ranked emoji list.
type EmotionCatalogEntry struct {
	Emotion string   `json:"emotion"`
	Emojis  []string `json:"emojis"`
}

// EmotionsResponse lists the supported emotion vocabulary.
type EmotionsResponse struct {
	Emotions []EmotionCatalogEntry `json:"emotions"`
	Count    int                   `json:"count"`
}

// ServiceStats summarizes the suggester configuration and stored
// personalization volume.
type ServiceStats struct {
	Emotions          int                `json:"emotions"`
	CatalogEmojis     int                `json:"catalog_emojis"`
	Methods           []string           `json:"methods"`
	Weights           map[string]float64 `json:"weights"`
	Users             int                `json:"users"`
	TotalInteractions int                `json:"total_interactions"`
}
