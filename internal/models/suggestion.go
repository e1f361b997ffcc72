// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package models

// SuggestRequest asks for emoji suggestions for a single text.
//
// Fields:
//   - Text: Input text to suggest emojis for (1 to 500 characters)
//   - UserID: Optional user identifier enabling personalized re-ranking
//   - TopK: Number of suggestions to return (1 to 10, default 3)
//   - Method: Combination method, "voting" or "weighted" (default "weighted")
//   - Emotion: Optional emotion label detected by the caller, forwarded to
//     label-mapping providers
//
// Example:
//
//	{
//	  "text": "just got the job offer!!",
//	  "user_id": "alice",
//	  "top_k": 3,
//	  "method": "weighted"
//	}
type SuggestRequest struct {
	Text    string `json:"text" validate:"required,min=1,max=500"`
	UserID  string `json:"user_id,omitempty" validate:"omitempty,max=128"`
	TopK    int    `json:"top_k,omitempty" validate:"omitempty,min=1,max=10"`
	Method  string `json:"method,omitempty" validate:"omitempty,oneof=voting weighted"`
	Emotion string `json:"emotion,omitempty" validate:"omitempty,emotion"`
}

// ApplyDefaults fills zero-valued optional fields with their documented defaults.
func (r *SuggestRequest) ApplyDefaults() {
	if r.TopK == 0 {
		r.TopK = 3
	}
	if r.Method == "" {
		r.Method = "weighted"
	}
}

// SuggestResponse carries the final ranked suggestions for a text.
//
// PredictionID identifies the logged prediction so later feedback can be
// attached to it.
type SuggestResponse struct {
	Text         string   `json:"text"`
	Suggestions  []string `json:"suggestions"`
	Method       string   `json:"method"`
	Personalized bool     `json:"personalized"`
	PredictionID string   `json:"prediction_id,omitempty"`
	LatencyMS    float64  `json:"latency_ms"`
}

// DetailedSuggestResponse exposes each provider's contribution alongside the
// final ranking, for debugging and offline analysis.
//
// Example:
//
//	{
//	  "text": "so proud of you",
//	  "keyword_suggestions": ["🤝", "💪", "👍"],
//	  "sentiment_suggestions": ["😊", "🎉", "😄"],
//	  "semantic_suggestions": ["💪", "👏", "💯"],
//	  "final_suggestions": ["💪", "😊", "👍"],
//	  "detected_emotion": "trust",
//	  "confidence": 0.85,
//	  "method": "weighted",
//	  "matched_keywords": ["proud"]
//	}
type DetailedSuggestResponse struct {
	Text                 string   `json:"text"`
	KeywordSuggestions   []string `json:"keyword_suggestions"`
	SentimentSuggestions []string `json:"sentiment_suggestions"`
	SemanticSuggestions  []string `json:"semantic_suggestions"`
	FinalSuggestions     []string `json:"final_suggestions"`
	DetectedEmotion      string   `json:"detected_emotion"`
	Confidence           float64  `json:"confidence"`
	Method               string   `json:"method"`
	MatchedKeywords      []string `json:"matched_keywords"`
	PredictionID         string   `json:"prediction_id,omitempty"`
}

// BatchSuggestRequest asks for suggestions for several texts in one call.
type BatchSuggestRequest struct {
	Texts   []string `json:"texts" validate:"required,min=1,max=100,dive,min=1,max=500"`
	TopK    int      `json:"top_k,omitempty" validate:"omitempty,min=1,max=10"`
	Method  string   `json:"method,omitempty" validate:"omitempty,oneof=voting weighted"`
	Emotion string   `json:"emotion,omitempty" validate:"omitempty,emotion"`
}

// ApplyDefaults fills zero-valued optional fields with their documented defaults.
func (r *BatchSuggestRequest) ApplyDefaults() {
	if r.TopK == 0 {
		r.TopK = 3
	}
	if r.Method == "" {
		r.Method = "weighted"
	}
}

// BatchSuggestItem is one entry of a batch response.
type BatchSuggestItem struct {
	Text        string   `json:"text"`
	Suggestions []string `json:"suggestions"`
}

// BatchSuggestResponse carries per-text suggestions in request order.
type BatchSuggestResponse struct {
	Results []BatchSuggestItem `json:"results"`
	Count   int                `json:"count"`
}
