// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/affectus/internal/emotion"
	"github.com/tomtom215/affectus/internal/ensemble"
	"github.com/tomtom215/affectus/internal/logging"
	"github.com/tomtom215/affectus/internal/metrics"
	"github.com/tomtom215/affectus/internal/models"
	"github.com/tomtom215/affectus/internal/monitor"
)

// suggestOutcome carries one pipeline run: the ensemble breakdown, the
// final (possibly re-ranked) list, and the identifiers the response needs.
type suggestOutcome struct {
	details      *ensemble.Details
	suggestions  []string
	personalized bool
	predictionID string
	elapsed      time.Duration
}

// runSuggestPipeline executes the full serving path for one text: ensemble
// combination, preference re-ranking when a user is known, and prediction
// logging. Provider failures inside the ensemble degrade to the fallback
// list rather than failing the request; personalization and logging
// failures are logged and skipped so suggestion serving never depends on
// either subsystem.
func (h *Handler) runSuggestPipeline(r *http.Request, req *models.SuggestRequest, hint emotion.Emotion) (*suggestOutcome, error) {
	start := time.Now()

	details, err := h.combiner.Combine(r.Context(), ensemble.Request{
		Text:    req.Text,
		Emotion: hint,
		TopK:    req.TopK,
		Method:  req.Method,
	})
	if err != nil {
		return nil, err
	}
	if len(details.ProviderEmojis) == 0 {
		metrics.RecordFallback()
	}

	suggestions := details.FinalSuggestions
	personalized := false
	if req.UserID != "" && h.personalizer != nil {
		emo := details.DetectedEmotion
		if hint != "" {
			emo = hint
		}
		ranked, rankErr := h.personalizer.Rank(req.UserID, emo, suggestions)
		if rankErr != nil {
			logging.Warn().Err(rankErr).Str("user_id", sanitizeLogValue(req.UserID)).
				Msg("preference ranking failed, serving ensemble order")
		} else {
			suggestions = ranked
			personalized = true
		}
	}

	elapsed := time.Since(start)

	predictionID := ""
	if h.monitor != nil {
		id, logErr := h.monitor.LogPrediction(monitor.Prediction{
			Text:       req.Text,
			Emotion:    details.DetectedEmotion,
			Emojis:     suggestions,
			Confidence: details.Confidence,
			Latency:    elapsed,
		})
		if logErr != nil {
			logging.Warn().Err(logErr).Msg("prediction logging failed")
		} else {
			predictionID = id
		}
	}

	metrics.RecordSuggestion(details.Method, personalized, elapsed)

	return &suggestOutcome{
		details:      details,
		suggestions:  suggestions,
		personalized: personalized,
		predictionID: predictionID,
		elapsed:      elapsed,
	}, nil
}

// parseEmotionHint converts an optional emotion label to its typed form,
// responding with a validation error for labels outside the vocabulary.
// The second return reports whether processing may continue.
func parseEmotionHint(w http.ResponseWriter, label string) (emotion.Emotion, bool) {
	if label == "" {
		return "", true
	}
	emo, err := emotion.Parse(label)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown emotion label", err)
		return "", false
	}
	return emo, true
}

// respondCombineError maps an ensemble failure to the right status: a
// rejected method is the caller's fault, anything else is ours.
func respondCombineError(w http.ResponseWriter, err error) {
	if errors.Is(err, ensemble.ErrUnknownMethod) {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown combination method", err)
		return
	}
	respondError(w, http.StatusInternalServerError, "PROVIDER_ERROR", "Suggestion pipeline failed", err)
}

// Suggest handles single-text suggestion requests
//
// @Summary Suggest emojis for a text
// @Description Runs the provider ensemble for one text and returns the top-k combined suggestions. When a user_id is supplied the ranking is adjusted by that user's decayed selection history. The served prediction is logged and its identifier returned so feedback can be attached later.
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body models.SuggestRequest true "Suggestion request"
// @Success 200 {object} models.APIResponse{data=models.SuggestResponse} "Ranked suggestions"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 500 {object} models.APIResponse "Ensemble failure"
// @Router /api/v1/suggest [post]
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	var req models.SuggestRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	req.ApplyDefaults()

	hint, ok := parseEmotionHint(w, req.Emotion)
	if !ok {
		return
	}

	start := time.Now()
	outcome, err := h.runSuggestPipeline(r, &req, hint)
	if err != nil {
		respondCombineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.SuggestResponse{
			Text:         req.Text,
			Suggestions:  outcome.suggestions,
			Method:       outcome.details.Method,
			Personalized: outcome.personalized,
			PredictionID: outcome.predictionID,
			LatencyMS:    latencyMS(outcome.elapsed),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			LatencyMS: latencyMS(time.Since(start)),
		},
	})
}

// SuggestDetailed handles suggestion requests with per-provider breakdown
//
// @Summary Suggest emojis with provider breakdown
// @Description Runs the same pipeline as /suggest but also returns each provider's candidate list, the highest-confidence detected emotion, and any matched keywords. Intended for debugging and offline analysis.
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body models.SuggestRequest true "Suggestion request"
// @Success 200 {object} models.APIResponse{data=models.DetailedSuggestResponse} "Suggestions with provider breakdown"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 500 {object} models.APIResponse "Ensemble failure"
// @Router /api/v1/suggest/detailed [post]
func (h *Handler) SuggestDetailed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	var req models.SuggestRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	req.ApplyDefaults()

	hint, ok := parseEmotionHint(w, req.Emotion)
	if !ok {
		return
	}

	start := time.Now()
	outcome, err := h.runSuggestPipeline(r, &req, hint)
	if err != nil {
		respondCombineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.DetailedSuggestResponse{
			Text:                 req.Text,
			KeywordSuggestions:   providerList(outcome.details, "keyword"),
			SentimentSuggestions: providerList(outcome.details, "sentiment"),
			SemanticSuggestions:  providerList(outcome.details, "semantic"),
			FinalSuggestions:     outcome.suggestions,
			DetectedEmotion:      outcome.details.DetectedEmotion.String(),
			Confidence:           outcome.details.Confidence,
			Method:               outcome.details.Method,
			MatchedKeywords:      outcome.details.MatchedKeywords,
			PredictionID:         outcome.predictionID,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			LatencyMS: latencyMS(time.Since(start)),
		},
	})
}

// providerList returns one provider's candidates from the breakdown, or an
// empty list when the provider failed or is not registered.
func providerList(details *ensemble.Details, name string) []string {
	if emojis, ok := details.ProviderEmojis[name]; ok {
		return emojis
	}
	return []string{}
}

// SuggestBatch handles multi-text suggestion requests
//
// @Summary Suggest emojis for multiple texts
// @Description Runs the ensemble for up to 100 texts in one call and returns per-text suggestions in request order. Batch requests are not personalized and are not logged to the prediction monitor.
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body models.BatchSuggestRequest true "Batch suggestion request"
// @Success 200 {object} models.APIResponse{data=models.BatchSuggestResponse} "Per-text suggestions"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 500 {object} models.APIResponse "Ensemble failure"
// @Router /api/v1/suggest/batch [post]
func (h *Handler) SuggestBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	var req models.BatchSuggestRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	req.ApplyDefaults()

	if h.config != nil && h.config.API.MaxBatchSize > 0 && len(req.Texts) > h.config.API.MaxBatchSize {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Batch exceeds configured size limit", nil)
		return
	}

	hint, ok := parseEmotionHint(w, req.Emotion)
	if !ok {
		return
	}

	start := time.Now()
	metrics.RecordBatchSize(len(req.Texts))

	results := make([]models.BatchSuggestItem, 0, len(req.Texts))
	for _, text := range req.Texts {
		details, err := h.combiner.Combine(r.Context(), ensemble.Request{
			Text:    text,
			Emotion: hint,
			TopK:    req.TopK,
			Method:  req.Method,
		})
		if err != nil {
			respondCombineError(w, err)
			return
		}
		results = append(results, models.BatchSuggestItem{
			Text:        text,
			Suggestions: details.FinalSuggestions,
		})
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.BatchSuggestResponse{
			Results: results,
			Count:   len(results),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			LatencyMS: latencyMS(time.Since(start)),
		},
	})
}
