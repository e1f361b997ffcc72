// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestSuggestRequestApplyDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        SuggestRequest
		wantTopK   int
		wantMethod string
	}{
		{"empty fields", SuggestRequest{Text: "hi"}, 3, "weighted"},
		{"explicit values kept", SuggestRequest{Text: "hi", TopK: 5, Method: "voting"}, 5, "voting"},
		{"partial", SuggestRequest{Text: "hi", TopK: 7}, 7, "weighted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.ApplyDefaults()
			if tt.req.TopK != tt.wantTopK {
				t.Errorf("TopK = %d, want %d", tt.req.TopK, tt.wantTopK)
			}
			if tt.req.Method != tt.wantMethod {
				t.Errorf("Method = %q, want %q", tt.req.Method, tt.wantMethod)
			}
		})
	}
}

func TestBatchSuggestRequestApplyDefaults(t *testing.T) {
	t.Parallel()

	req := BatchSuggestRequest{Texts: []string{"a", "b"}}
	req.ApplyDefaults()

	if req.TopK != 3 {
		t.Errorf("TopK = %d, want 3", req.TopK)
	}
	if req.Method != "weighted" {
		t.Errorf("Method = %q, want weighted", req.Method)
	}
}

func TestCompareRequestApplyDefaults(t *testing.T) {
	t.Parallel()

	req := CompareRequest{}
	req.ApplyDefaults()

	if req.K != 3 {
		t.Errorf("K = %d, want 3", req.K)
	}
	if len(req.Methods) != 2 || req.Methods[0] != "voting" || req.Methods[1] != "weighted" {
		t.Errorf("Methods = %v, want [voting weighted]", req.Methods)
	}
}

func TestSuggestRequestJSONFieldNames(t *testing.T) {
	t.Parallel()

	raw := `{"text":"great news","user_id":"alice","top_k":5,"method":"voting"}`

	var req SuggestRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if req.Text != "great news" {
		t.Errorf("Text = %q, want %q", req.Text, "great news")
	}
	if req.UserID != "alice" {
		t.Errorf("UserID = %q, want alice", req.UserID)
	}
	if req.TopK != 5 {
		t.Errorf("TopK = %d, want 5", req.TopK)
	}
	if req.Method != "voting" {
		t.Errorf("Method = %q, want voting", req.Method)
	}
}

func TestDetailedSuggestResponseOmitsNothing(t *testing.T) {
	t.Parallel()

	resp := DetailedSuggestResponse{
		Text:                 "ok",
		KeywordSuggestions:   []string{},
		SentimentSuggestions: []string{},
		SemanticSuggestions:  []string{},
		FinalSuggestions:     []string{"🤔", "😊", "👍"},
		DetectedEmotion:      "joy",
		Method:               "weighted",
		MatchedKeywords:      []string{},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Empty provider lists serialize as [] so clients can rely on the keys.
	for _, key := range []string{
		`"keyword_suggestions":[]`,
		`"sentiment_suggestions":[]`,
		`"semantic_suggestions":[]`,
		`"matched_keywords":[]`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected %s in %s", key, data)
		}
	}
}
