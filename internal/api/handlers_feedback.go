// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/affectus/internal/emotion"
	"github.com/tomtom215/affectus/internal/models"
)

// feedbackPositive and feedbackNegative are the outcome labels attached to
// logged predictions.
const (
	feedbackPositive = "positive"
	feedbackNegative = "negative"
)

// Feedback handles suggestion outcome reports
//
// @Summary Record feedback for a suggestion
// @Description Records what the user did with a suggestion. A user_id (with its emotion context) updates that user's preference profile; a prediction_id attaches the outcome to the logged prediction, which only succeeds while the prediction is still buffered. At least one of the two identifiers is required.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body models.FeedbackRequest true "Feedback report"
// @Success 200 {object} models.APIResponse{data=models.FeedbackResponse} "Feedback recorded"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 500 {object} models.APIResponse "Preference store failure"
// @Router /api/v1/feedback [post]
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	var req models.FeedbackRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	recorded := false

	if req.UserID != "" && h.personalizer != nil {
		emo, err := emotion.Parse(req.Emotion)
		if err != nil {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown emotion label", err)
			return
		}
		if err := h.personalizer.RecordSelection(req.UserID, req.Emoji, emo, req.Selected); err != nil {
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record selection", err)
			return
		}
		recorded = true
	}

	if req.PredictionID != "" && h.monitor != nil {
		outcome := feedbackNegative
		selected := ""
		if req.Selected {
			outcome = feedbackPositive
			selected = req.Emoji
		}
		if h.monitor.RecordFeedback(req.PredictionID, outcome, selected) {
			recorded = true
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.FeedbackResponse{
			Recorded: recorded,
			UserID:   req.UserID,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
