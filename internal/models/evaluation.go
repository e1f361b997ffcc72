// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package models

// EvaluationSample is one labeled example for offline evaluation.
//
// Emojis holds the ground-truth emojis a rater attached to the text.
// Emotion and Intensity are optional annotations used by error analysis.
type EvaluationSample struct {
	Text      string   `json:"text" validate:"required,min=1,max=500"`
	Emojis    []string `json:"emojis" validate:"required,min=1,max=10"`
	Emotion   string   `json:"emotion,omitempty" validate:"omitempty,emotion"`
	Intensity *float64 `json:"intensity,omitempty" validate:"omitempty,min=0,max=1"`
}

// EvaluateRequest runs the live suggester against a labeled sample set.
//
// Fields:
//   - Samples: Labeled examples (1 to 1000)
//   - K: Ranking cutoff for precision/NDCG (default 3)
//   - Method: Combination method to evaluate (default "weighted")
//   - Verbose: Include per-sample details in the report
//   - Analyze: Include error analysis (misses grouped by emotion)
type EvaluateRequest struct {
	Samples []EvaluationSample `json:"samples" validate:"required,min=1,max=1000,dive"`
	K       int                `json:"k,omitempty" validate:"omitempty,min=1,max=10"`
	Method  string             `json:"method,omitempty" validate:"omitempty,oneof=voting weighted"`
	Verbose bool               `json:"verbose,omitempty"`
	Analyze bool               `json:"analyze,omitempty"`
}

// ApplyDefaults fills zero-valued optional fields with their documented defaults.
func (r *EvaluateRequest) ApplyDefaults() {
	if r.K == 0 {
		r.K = 3
	}
	if r.Method == "" {
		r.Method = "weighted"
	}
}

// CompareRequest evaluates several combination methods on the same samples.
type CompareRequest struct {
	Samples []EvaluationSample `json:"samples" validate:"required,min=1,max=1000,dive"`
	K       int                `json:"k,omitempty" validate:"omitempty,min=1,max=10"`
	Methods []string           `json:"methods,omitempty" validate:"omitempty,min=1,max=4,dive,oneof=voting weighted"`
}

// ApplyDefaults fills zero-valued optional fields with their documented defaults.
func (r *CompareRequest) ApplyDefaults() {
	if r.K == 0 {
		r.K = 3
	}
	if len(r.Methods) == 0 {
		r.Methods = []string{"voting", "weighted"}
	}
}

// AgreementRequest computes inter-rater agreement between two annotation passes.
// Both lists must have the same length; position i of each list labels the
// same item.
type AgreementRequest struct {
	RaterA []string `json:"rater_a" validate:"required,min=1,max=10000"`
	RaterB []string `json:"rater_b" validate:"required,min=1,max=10000"`
}
