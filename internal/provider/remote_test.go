// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/affectus/internal/emotion"
	"github.com/tomtom215/affectus/internal/ensemble"
)

func TestNewRemote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     RemoteConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg:  RemoteConfig{Name: "sentiment", URL: "http://localhost:8001/suggest"},
		},
		{
			name:    "missing name",
			cfg:     RemoteConfig{URL: "http://localhost:8001/suggest"},
			wantErr: true,
		},
		{
			name:    "missing url",
			cfg:     RemoteConfig{Name: "sentiment"},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     RemoteConfig{Name: "sentiment", URL: "http://localhost:8001/suggest", Timeout: -time.Second},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewRemote(tt.cfg, testLogger())
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewRemote() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRemote() error = %v", err)
			}
			if r.Name() != tt.cfg.Name {
				t.Errorf("Name() = %q, want %q", r.Name(), tt.cfg.Name)
			}
		})
	}
}

func TestNewRemote_AppliesDefaultTimeout(t *testing.T) {
	t.Parallel()

	r, err := NewRemote(RemoteConfig{Name: "sentiment", URL: "http://localhost:8001/suggest"}, testLogger())
	if err != nil {
		t.Fatalf("NewRemote() error = %v", err)
	}
	if r.httpClient.Timeout != DefaultRemoteTimeout {
		t.Errorf("client timeout = %v, want %v", r.httpClient.Timeout, DefaultRemoteTimeout)
	}
}

func TestNewRemote_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	r, err := NewRemote(RemoteConfig{Name: "sentiment", URL: "http://localhost:8001/suggest/"}, testLogger())
	if err != nil {
		t.Fatalf("NewRemote() error = %v", err)
	}
	if r.url != "http://localhost:8001/suggest" {
		t.Errorf("url = %q, want trailing slash removed", r.url)
	}
}

func TestRemote_Suggest(t *testing.T) {
	t.Parallel()

	var (
		gotMethod      string
		gotContentType string
		gotPayload     suggestPayload
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotMethod = req.Method
		gotContentType = req.Header.Get("Content-Type")
		_ = json.NewDecoder(req.Body).Decode(&gotPayload)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"emojis": ["😊", "🎉", "✨"],
			"emotion": "joy",
			"confidence": 0.87,
			"matched_keywords": ["happy", "great"]
		}`))
	}))
	defer srv.Close()

	r, err := NewRemote(RemoteConfig{Name: "sentiment", URL: srv.URL}, testLogger())
	if err != nil {
		t.Fatalf("NewRemote() error = %v", err)
	}

	got, err := r.Suggest(context.Background(), ensemble.Query{Text: "what a happy great day"}, 3)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("request method = %q, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotPayload.Text != "what a happy great day" {
		t.Errorf("payload text = %q, want the query text", gotPayload.Text)
	}
	if gotPayload.TopK != 3 {
		t.Errorf("payload top_k = %d, want 3", gotPayload.TopK)
	}

	if !sameStrings(got.Emojis, []string{"😊", "🎉", "✨"}) {
		t.Errorf("Emojis = %v, want the service's ranked list", got.Emojis)
	}
	if got.Emotion != emotion.Joy {
		t.Errorf("Emotion = %v, want %v", got.Emotion, emotion.Joy)
	}
	if got.Confidence != 0.87 {
		t.Errorf("Confidence = %v, want 0.87", got.Confidence)
	}
	if !sameStrings(got.MatchedKeywords, []string{"happy", "great"}) {
		t.Errorf("MatchedKeywords = %v, want [happy great]", got.MatchedKeywords)
	}
}

// An unrecognized emotion label keeps the emojis but drops the classification.
func TestRemote_SuggestUnknownEmotionLabel(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"emojis": ["🤩"], "emotion": "excited", "confidence": 0.9}`))
	}))
	defer srv.Close()

	r, err := NewRemote(RemoteConfig{Name: "semantic", URL: srv.URL}, testLogger())
	if err != nil {
		t.Fatalf("NewRemote() error = %v", err)
	}

	got, err := r.Suggest(context.Background(), ensemble.Query{Text: "wow"}, 1)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if !sameStrings(got.Emojis, []string{"🤩"}) {
		t.Errorf("Emojis = %v, want [🤩]", got.Emojis)
	}
	if got.Emotion.IsValid() {
		t.Errorf("Emotion = %v, want no classification for unknown label", got.Emotion)
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", got.Confidence)
	}
}

func TestRemote_SuggestServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	r, err := NewRemote(RemoteConfig{Name: "sentiment", URL: srv.URL}, testLogger())
	if err != nil {
		t.Fatalf("NewRemote() error = %v", err)
	}

	_, err = r.Suggest(context.Background(), ensemble.Query{Text: "hello"}, 3)
	if err == nil {
		t.Fatal("Suggest() error = nil, want error for status 503")
	}
	if !strings.Contains(err.Error(), "returned status 503") {
		t.Errorf("error = %v, want status in message", err)
	}
	if !strings.Contains(err.Error(), "model not loaded") {
		t.Errorf("error = %v, want response body in message", err)
	}
}

func TestRemote_SuggestMalformedResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	r, err := NewRemote(RemoteConfig{Name: "sentiment", URL: srv.URL}, testLogger())
	if err != nil {
		t.Fatalf("NewRemote() error = %v", err)
	}

	_, err = r.Suggest(context.Background(), ensemble.Query{Text: "hello"}, 3)
	if err == nil {
		t.Fatal("Suggest() error = nil, want decode error")
	}
	if !strings.Contains(err.Error(), "failed to decode sentiment response") {
		t.Errorf("error = %v, want decode failure message", err)
	}
}

func TestRemote_SuggestContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"emojis": []}`))
	}))
	defer srv.Close()

	r, err := NewRemote(RemoteConfig{Name: "sentiment", URL: srv.URL}, testLogger())
	if err != nil {
		t.Fatalf("NewRemote() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Suggest(ctx, ensemble.Query{Text: "hello"}, 3); err == nil {
		t.Error("Suggest() error = nil, want error for canceled context")
	}
}
