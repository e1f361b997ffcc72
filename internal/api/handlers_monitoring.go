// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/affectus/internal/models"
	"github.com/tomtom215/affectus/internal/monitor"
)

// MonitoringDaily handles daily metric rollups
//
// @Summary Compute daily metrics
// @Description Flushes the prediction buffer and aggregates the prediction log for one date (YYYY-MM-DD, default today): volume, mean confidence and latency, positive feedback rate, emotion distribution, and top emojis. Recomputation overwrites the stored snapshot for that date.
// @Tags Monitoring
// @Accept json
// @Produce json
// @Param date path string false "Date to aggregate (YYYY-MM-DD)"
// @Success 200 {object} models.APIResponse{data=monitor.DailySnapshot} "Daily snapshot"
// @Failure 400 {object} models.APIResponse "Invalid date"
// @Failure 500 {object} models.APIResponse "Log read failure"
// @Failure 503 {object} models.APIResponse "Monitoring disabled"
// @Router /api/v1/monitoring/daily/{date} [post]
func (h *Handler) MonitoringDaily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}
	if !h.requireMonitor(w) {
		return
	}

	date := chi.URLParam(r, "date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Date must be YYYY-MM-DD", err)
			return
		}
	}

	snapshot, err := h.monitor.ComputeDailyMetrics(date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute daily metrics", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   snapshot,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// MonitoringWeekly handles weekly report generation
//
// @Summary Generate the weekly report
// @Description Recomputes daily snapshots over the trailing seven days, aggregates them, and checks the aggregate against the fixed quality-target table. The report replaces any earlier report stored for the same week.
// @Tags Monitoring
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=monitor.WeeklyReport} "Weekly report"
// @Failure 500 {object} models.APIResponse "Log read failure"
// @Failure 503 {object} models.APIResponse "Monitoring disabled"
// @Router /api/v1/monitoring/weekly [get]
func (h *Handler) MonitoringWeekly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}
	if !h.requireMonitor(w) {
		return
	}

	report, err := h.monitor.GenerateWeeklyReport()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate weekly report", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   report,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// MonitoringDrift handles day-over-day drift checks
//
// @Summary Check for metric drift
// @Description Compares today's snapshot against yesterday's. Mean confidence alerts on relative change beyond the threshold in either direction; mean latency alerts only on slowdown. Raised alerts append to the persisted alert history.
// @Tags Monitoring
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Raised alerts"
// @Failure 500 {object} models.APIResponse "Metrics store failure"
// @Failure 503 {object} models.APIResponse "Monitoring disabled"
// @Router /api/v1/monitoring/drift [get]
func (h *Handler) MonitoringDrift(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}
	if !h.requireMonitor(w) {
		return
	}

	alerts, err := h.monitor.CheckDrift()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check drift", err)
		return
	}
	if alerts == nil {
		alerts = []monitor.AlertRecord{}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alerts": alerts,
			"count":  len(alerts),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// MonitoringStatus handles monitor state queries
//
// @Summary Get monitoring status
// @Description Returns the monitor's current state: storage paths, today's snapshot when present, the evaluation target table, recent alerts, and the prediction buffer depth
// @Tags Monitoring
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=monitor.Status} "Monitor status"
// @Failure 503 {object} models.APIResponse "Monitoring disabled"
// @Router /api/v1/monitoring/status [get]
func (h *Handler) MonitoringStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}
	if !h.requireMonitor(w) {
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   h.monitor.Status(),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
