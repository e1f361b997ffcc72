// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/affectus/internal/emotion"
)

// seedUser records selections so the user exists in the preference store.
func seedUser(t *testing.T, handler *Handler, user string) {
	t.Helper()

	selections := []struct {
		emoji string
		emo   emotion.Emotion
	}{
		{"😊", emotion.Joy},
		{"😊", emotion.Joy},
		{"🎉", emotion.Joy},
	}
	for _, s := range selections {
		if err := handler.personalizer.RecordSelection(user, s.emoji, s.emo, true); err != nil {
			t.Fatalf("RecordSelection() error = %v", err)
		}
	}
}

// TestUserStats_PersonalizationDisabled tests the 503 guard
func TestUserStats_PersonalizationDisabled(t *testing.T) {
	t.Parallel()

	handler := NewHandler(newTestCombiner(t), nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/alice/stats", nil)
	req = withChiParam(req, "id", "alice")
	w := httptest.NewRecorder()

	handler.UserStats(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503, got %d", w.Code)
	}
	response := decodeResponse(t, w)
	if response.Error == nil || response.Error.Code != "SERVICE_UNAVAILABLE" {
		t.Errorf("Expected SERVICE_UNAVAILABLE, got %+v", response.Error)
	}
}

// TestUserStats_MissingID tests the empty path parameter guard
func TestUserStats_MissingID(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users//stats", nil)
	req = withChiParam(req, "id", "")
	w := httptest.NewRecorder()

	handler.UserStats(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

// TestUserStats_IDTooLong tests the identifier length guard
func TestUserStats_IDTooLong(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	long := strings.Repeat("u", 129)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+long+"/stats", nil)
	req = withChiParam(req, "id", long)
	w := httptest.NewRecorder()

	handler.UserStats(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

// TestUserStats_UnknownUser tests the 404 path
func TestUserStats_UnknownUser(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/nobody/stats", nil)
	req = withChiParam(req, "id", "nobody")
	w := httptest.NewRecorder()

	handler.UserStats(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
	response := decodeResponse(t, w)
	if response.Error == nil || response.Error.Code != "USER_NOT_FOUND" {
		t.Errorf("Expected USER_NOT_FOUND, got %+v", response.Error)
	}
}

// TestUserStats_Success tests stats for a seeded user
func TestUserStats_Success(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	seedUser(t, handler, "alice")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/alice/stats", nil)
	req = withChiParam(req, "id", "alice")
	w := httptest.NewRecorder()

	handler.UserStats(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	data := dataMap(t, decodeResponse(t, w))
	if data["user_id"] != "alice" {
		t.Errorf("Expected user_id 'alice', got %v", data["user_id"])
	}
	if total, ok := data["total_interactions"].(float64); !ok || int(total) != 3 {
		t.Errorf("Expected 3 interactions, got %v", data["total_interactions"])
	}

	used, ok := data["emotions_used"].([]interface{})
	if !ok || len(used) != 1 || used[0] != "joy" {
		t.Errorf("Expected emotions_used [joy], got %v", data["emotions_used"])
	}

	favorites, ok := data["favorite_emojis"].([]interface{})
	if !ok || len(favorites) == 0 {
		t.Fatalf("Expected favorite emojis, got %v", data["favorite_emojis"])
	}
	top, ok := favorites[0].(map[string]interface{})
	if !ok {
		t.Fatal("Favorite entry is not a map")
	}
	if top["emoji"] != "😊" {
		t.Errorf("Expected top favorite 😊, got %v", top["emoji"])
	}

	if days, ok := data["active_days"].(float64); !ok || int(days) != 1 {
		t.Errorf("Expected 1 active day, got %v", data["active_days"])
	}
}

// TestUserStats_MethodNotAllowed tests UserStats with POST
func TestUserStats_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/alice/stats", nil)
	req = withChiParam(req, "id", "alice")
	w := httptest.NewRecorder()

	handler.UserStats(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

// TestUserHistory_Success tests the default history window
func TestUserHistory_Success(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	seedUser(t, handler, "carol")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/carol/history", nil)
	req = withChiParam(req, "id", "carol")
	w := httptest.NewRecorder()

	handler.UserHistory(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	data := dataMap(t, decodeResponse(t, w))
	if data["user_id"] != "carol" {
		t.Errorf("Expected user_id 'carol', got %v", data["user_id"])
	}
	if days, ok := data["days"].(float64); !ok || int(days) != historyDaysDefault {
		t.Errorf("Expected default window %d, got %v", historyDaysDefault, data["days"])
	}

	history, ok := data["history"].(map[string]interface{})
	if !ok {
		t.Fatalf("History is not a map: %T", data["history"])
	}
	if len(history) != 1 {
		t.Fatalf("Expected history for 1 day, got %d", len(history))
	}
	for _, byEmotion := range history {
		counts, ok := byEmotion.(map[string]interface{})
		if !ok {
			t.Fatal("Per-day history is not a map")
		}
		if joy, ok := counts["joy"].(float64); !ok || int(joy) != 3 {
			t.Errorf("Expected 3 joy selections, got %v", counts["joy"])
		}
	}
}

// TestUserHistory_WindowBounds tests days parameter validation
func TestUserHistory_WindowBounds(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	tests := []struct {
		name     string
		query    string
		wantCode int
	}{
		{name: "zero days", query: "?days=0", wantCode: http.StatusBadRequest},
		{name: "negative days", query: "?days=-5", wantCode: http.StatusBadRequest},
		{name: "above maximum", query: "?days=91", wantCode: http.StatusBadRequest},
		{name: "at maximum", query: "?days=90", wantCode: http.StatusOK},
		{name: "unparseable falls back to default", query: "?days=week", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/dave/history"+tt.query, nil)
			req = withChiParam(req, "id", "dave")
			w := httptest.NewRecorder()

			handler.UserHistory(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("Expected status %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}

// TestUserReset_Success tests user data deletion
func TestUserReset_Success(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	seedUser(t, handler, "erin")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/erin", nil)
	req = withChiParam(req, "id", "erin")
	w := httptest.NewRecorder()

	handler.UserReset(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	data := dataMap(t, decodeResponse(t, w))
	if data["reset"] != true {
		t.Error("Expected reset true")
	}
	if data["user_id"] != "erin" {
		t.Errorf("Expected user_id 'erin', got %v", data["user_id"])
	}

	if stats := handler.personalizer.Stats("erin"); stats.TotalInteractions != 0 {
		t.Errorf("Expected no interactions after reset, got %d", stats.TotalInteractions)
	}
}

// TestUserReset_UnknownUser tests resetting a user that never interacted
func TestUserReset_UnknownUser(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/ghost", nil)
	req = withChiParam(req, "id", "ghost")
	w := httptest.NewRecorder()

	handler.UserReset(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	data := dataMap(t, decodeResponse(t, w))
	if data["reset"] != true {
		t.Error("Expected reset true for an unknown user")
	}
}

// TestUserReset_MethodNotAllowed tests UserReset with GET
func TestUserReset_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/alice", nil)
	req = withChiParam(req, "id", "alice")
	w := httptest.NewRecorder()

	handler.UserReset(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}
