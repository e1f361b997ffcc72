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
)

// historyDaysDefault is the trailing window served when the history
// endpoint receives no days parameter.
const historyDaysDefault = 7

// maxHistoryDaysParam caps the requestable history window.
const maxHistoryDaysParam = 90

// userID extracts and checks the {id} path parameter. The second return
// reports whether processing may continue.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "User ID is required", nil)
		return "", false
	}
	if len(id) > 128 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "User ID exceeds 128 characters", nil)
		return "", false
	}
	return id, true
}

// UserStats handles per-user activity summaries
//
// @Summary Get a user's personalization stats
// @Description Returns total interactions, the emotions the user has selected under, the top five emojis by selection count, and the number of distinct active days
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User identifier"
// @Success 200 {object} models.APIResponse{data=personalize.UserStats} "User statistics"
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Failure 503 {object} models.APIResponse "Personalization disabled"
// @Router /api/v1/users/{id}/stats [get]
func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}
	if !h.requirePersonalizer(w) {
		return
	}

	id, ok := userID(w, r)
	if !ok {
		return
	}

	stats := h.personalizer.Stats(id)
	if stats.TotalInteractions == 0 {
		respondError(w, http.StatusNotFound, "USER_NOT_FOUND", "No recorded interactions for user", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   stats,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// UserHistory handles per-user emotion history queries
//
// @Summary Get a user's emotion history
// @Description Returns selection counts grouped by date and emotion over a trailing window of days (default 7, maximum 90)
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User identifier"
// @Param days query int false "Trailing window in days" default(7)
// @Success 200 {object} models.APIResponse "Date to emotion to count mapping"
// @Failure 400 {object} models.APIResponse "Invalid window"
// @Failure 503 {object} models.APIResponse "Personalization disabled"
// @Router /api/v1/users/{id}/history [get]
func (h *Handler) UserHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}
	if !h.requirePersonalizer(w) {
		return
	}

	id, ok := userID(w, r)
	if !ok {
		return
	}

	days := getIntParam(r, "days", historyDaysDefault)
	if days < 1 || days > maxHistoryDaysParam {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Days must be between 1 and 90", nil)
		return
	}

	history := h.personalizer.EmotionHistory(id, days)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"user_id": id,
			"days":    days,
			"history": history,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// UserReset handles personalization data deletion
//
// @Summary Delete a user's personalization data
// @Description Removes the user's preferences and interaction history from the store. Resetting an unknown user succeeds and removes nothing.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User identifier"
// @Success 200 {object} models.APIResponse{data=models.ResetResponse} "User data removed"
// @Failure 500 {object} models.APIResponse "Preference store failure"
// @Failure 503 {object} models.APIResponse "Personalization disabled"
// @Router /api/v1/users/{id} [delete]
func (h *Handler) UserReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}
	if !h.requirePersonalizer(w) {
		return
	}

	id, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.personalizer.Reset(id); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reset user data", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.ResetResponse{
			UserID: id,
			Reset:  true,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
