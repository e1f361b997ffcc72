// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package api

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/tomtom215/affectus/internal/ensemble"
	"github.com/tomtom215/affectus/internal/evaluation"
	"github.com/tomtom215/affectus/internal/metrics"
	"github.com/tomtom215/affectus/internal/models"
)

// toEvaluationSamples converts API sample payloads to the evaluator's form.
func toEvaluationSamples(in []models.EvaluationSample) []evaluation.Sample {
	out := make([]evaluation.Sample, 0, len(in))
	for _, s := range in {
		sample := evaluation.Sample{
			Text:    s.Text,
			Truth:   s.Emojis,
			Emotion: s.Emotion,
		}
		if s.Intensity != nil {
			sample.Intensity = *s.Intensity
		}
		out = append(out, sample)
	}
	return out
}

// methodSuggester pins one combination method onto the shared combiner so
// several methods can be evaluated side by side on the same sample set.
type methodSuggester struct {
	combiner *ensemble.Combiner
	method   string
}

func (s methodSuggester) Suggest(ctx context.Context, text string, topK int, _ string) ([]string, error) {
	return s.combiner.Suggest(ctx, text, topK, s.method)
}

// EvaluationRun handles on-demand evaluation of the live suggester
//
// @Summary Evaluate the suggester on a labeled sample set
// @Description Runs the live ensemble over the supplied labeled samples and reports mean precision, recall, hit rate, MRR, and NDCG at the requested cutoff. Verbose includes per-sample outcomes; analyze adds a breakdown of complete misses grouped by annotated emotion.
// @Tags Evaluation
// @Accept json
// @Produce json
// @Param request body models.EvaluateRequest true "Labeled samples and evaluation options"
// @Success 200 {object} models.APIResponse{data=evaluation.Report} "Evaluation report"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 500 {object} models.APIResponse "Evaluation failure"
// @Router /api/v1/evaluation/run [post]
func (h *Handler) EvaluationRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	var req models.EvaluateRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	req.ApplyDefaults()

	samples := toEvaluationSamples(req.Samples)
	opts := evaluation.Options{K: req.K, Method: req.Method, Verbose: req.Verbose}

	start := time.Now()
	report, err := evaluation.Evaluate(r.Context(), h.combiner, samples, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "EVALUATION_ERROR", "Evaluation run failed", err)
		return
	}
	metrics.RecordEvaluation(req.Method, time.Since(start))

	var data interface{} = report
	if req.Analyze {
		analysis, analyzeErr := evaluation.AnalyzeErrors(r.Context(), h.combiner, samples, opts)
		if analyzeErr != nil {
			respondError(w, http.StatusInternalServerError, "EVALUATION_ERROR", "Error analysis failed", analyzeErr)
			return
		}
		data = map[string]interface{}{
			"report":         report,
			"error_analysis": analysis,
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			LatencyMS: latencyMS(time.Since(start)),
		},
	})
}

// EvaluationCompare handles side-by-side method comparison
//
// @Summary Compare combination methods on one sample set
// @Description Evaluates each requested combination method (default: voting and weighted) against the same labeled samples and reports per-method metrics plus the best method for each metric
// @Tags Evaluation
// @Accept json
// @Produce json
// @Param request body models.CompareRequest true "Labeled samples and methods to compare"
// @Success 200 {object} models.APIResponse "Per-method reports and best-method summary"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 500 {object} models.APIResponse "Evaluation failure"
// @Router /api/v1/evaluation/compare [post]
func (h *Handler) EvaluationCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	var req models.CompareRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	req.ApplyDefaults()

	suggesters := make(map[string]evaluation.Suggester, len(req.Methods))
	for _, method := range req.Methods {
		suggesters[method] = methodSuggester{combiner: h.combiner, method: method}
	}

	samples := toEvaluationSamples(req.Samples)

	start := time.Now()
	results, err := evaluation.Compare(r.Context(), suggesters, samples, evaluation.Options{K: req.K})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "EVALUATION_ERROR", "Comparison run failed", err)
		return
	}
	for _, method := range req.Methods {
		metrics.RecordEvaluation(method, time.Since(start))
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"results": results,
			"best":    bestByMetric(results),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			LatencyMS: latencyMS(time.Since(start)),
		},
	})
}

// bestByMetric names the winning model for each reported metric. Ties keep
// the first winner in map iteration-independent name order.
func bestByMetric(results map[string]*evaluation.Report) map[string]string {
	metricValues := map[string]func(*evaluation.Report) float64{
		"precision": func(r *evaluation.Report) float64 { return r.Precision },
		"recall":    func(r *evaluation.Report) float64 { return r.Recall },
		"hit_rate":  func(r *evaluation.Report) float64 { return r.HitRate },
		"mrr":       func(r *evaluation.Report) float64 { return r.MRR },
		"ndcg":      func(r *evaluation.Report) float64 { return r.NDCG },
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	best := make(map[string]string, len(metricValues))
	for metric, value := range metricValues {
		bestName := ""
		bestValue := -1.0
		for _, name := range names {
			if v := value(results[name]); v > bestValue {
				bestName = name
				bestValue = v
			}
		}
		if bestName != "" {
			best[metric] = bestName
		}
	}
	return best
}

// EvaluationAgreement handles inter-rater agreement checks
//
// @Summary Compute inter-rater agreement
// @Description Computes Cohen's kappa between two aligned annotation passes. Both label lists must have the same length; position i of each list labels the same item.
// @Tags Evaluation
// @Accept json
// @Produce json
// @Param request body models.AgreementRequest true "Two aligned label lists"
// @Success 200 {object} models.APIResponse "Kappa statistic"
// @Failure 400 {object} models.APIResponse "Invalid request or mismatched lists"
// @Router /api/v1/evaluation/agreement [post]
func (h *Handler) EvaluationAgreement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	var req models.AgreementRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	kappa, err := evaluation.InterRaterAgreement(req.RaterA, req.RaterB)
	if err != nil {
		if errors.Is(err, evaluation.ErrRaterLengthMismatch) {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Rater label lists differ in length", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "EVALUATION_ERROR", "Agreement computation failed", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"kappa":   kappa,
			"samples": len(req.RaterA),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
