// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package api

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/affectus/internal/emotion"
	"github.com/tomtom215/affectus/internal/monitor"
)

// TestMonitoring_Disabled tests the 503 guard on every monitoring endpoint
func TestMonitoring_Disabled(t *testing.T) {
	t.Parallel()

	handler := NewHandler(newTestCombiner(t), nil, nil, nil)

	tests := []struct {
		name    string
		method  string
		target  string
		handler http.HandlerFunc
	}{
		{"daily", http.MethodPost, "/api/v1/monitoring/daily", handler.MonitoringDaily},
		{"weekly", http.MethodGet, "/api/v1/monitoring/weekly", handler.MonitoringWeekly},
		{"drift", http.MethodGet, "/api/v1/monitoring/drift", handler.MonitoringDrift},
		{"status", http.MethodGet, "/api/v1/monitoring/status", handler.MonitoringStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()

			tt.handler(w, req)

			if w.Code != http.StatusServiceUnavailable {
				t.Fatalf("Expected status 503, got %d", w.Code)
			}
			response := decodeResponse(t, w)
			if response.Error == nil || response.Error.Code != "SERVICE_UNAVAILABLE" {
				t.Errorf("Expected SERVICE_UNAVAILABLE, got %+v", response.Error)
			}
		})
	}
}

// TestMonitoringDaily_MethodNotAllowed tests MonitoringDaily with GET
func TestMonitoringDaily_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/daily", nil)
	w := httptest.NewRecorder()

	handler.MonitoringDaily(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

// TestMonitoringDaily_InvalidDate tests date path parameter validation
func TestMonitoringDaily_InvalidDate(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	dates := []string{"yesterday", "2026-13-01", "01-02-2026", "2026/01/02"}
	for _, date := range dates {
		t.Run(date, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/monitoring/daily/"+date, nil)
			req = withChiParam(req, "date", date)
			w := httptest.NewRecorder()

			handler.MonitoringDaily(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400 for %q, got %d", date, w.Code)
			}
			response := decodeResponse(t, w)
			if response.Error == nil || response.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("Expected VALIDATION_ERROR, got %+v", response.Error)
			}
		})
	}
}

// TestMonitoringDaily_EmptyDay tests a rollup with no logged predictions
func TestMonitoringDaily_EmptyDay(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/monitoring/daily", nil)
	w := httptest.NewRecorder()

	handler.MonitoringDaily(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	data := dataMap(t, decodeResponse(t, w))
	if total, ok := data["total_predictions"].(float64); !ok || int(total) != 0 {
		t.Errorf("Expected 0 predictions, got %v", data["total_predictions"])
	}
	if date, ok := data["date"].(string); !ok || date == "" {
		t.Error("Expected the snapshot to carry today's date")
	}
}

// TestMonitoringDaily_Aggregates tests a rollup over logged predictions
func TestMonitoringDaily_Aggregates(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	predictions := []monitor.Prediction{
		{Text: "great news", Emotion: emotion.Joy, Emojis: []string{"😊"}, Confidence: 0.8, Latency: 2 * time.Millisecond},
		{Text: "terrible news", Emotion: emotion.Sadness, Emojis: []string{"😢"}, Confidence: 0.6, Latency: 4 * time.Millisecond},
	}
	for _, p := range predictions {
		if _, err := handler.monitor.LogPrediction(p); err != nil {
			t.Fatalf("LogPrediction() error = %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/monitoring/daily", nil)
	w := httptest.NewRecorder()

	handler.MonitoringDaily(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	data := dataMap(t, decodeResponse(t, w))
	if total, ok := data["total_predictions"].(float64); !ok || int(total) != 2 {
		t.Errorf("Expected 2 predictions, got %v", data["total_predictions"])
	}
	if avg, ok := data["avg_confidence"].(float64); !ok || math.Abs(avg-0.7) > 1e-9 {
		t.Errorf("Expected mean confidence 0.7, got %v", data["avg_confidence"])
	}

	distribution, ok := data["emotion_distribution"].(map[string]interface{})
	if !ok {
		t.Fatal("Emotion distribution is not a map")
	}
	if joy, ok := distribution["joy"].(float64); !ok || int(joy) != 1 {
		t.Errorf("Expected 1 joy prediction, got %v", distribution["joy"])
	}
}

// TestMonitoringWeekly_Success tests report generation on an empty week
func TestMonitoringWeekly_Success(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/weekly", nil)
	w := httptest.NewRecorder()

	handler.MonitoringWeekly(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	data := dataMap(t, decodeResponse(t, w))
	if period, ok := data["period"].(string); !ok || period == "" {
		t.Error("Expected a non-empty report period")
	}
	if _, ok := data["daily_breakdown"].([]interface{}); !ok {
		t.Errorf("Expected a daily breakdown list, got %T", data["daily_breakdown"])
	}
	// No volume this week, so the aggregate summary stays omitted.
	if _, present := data["summary"]; present {
		t.Error("Expected summary to be omitted for an empty week")
	}
}

// TestMonitoringDrift_NoBaseline tests drift with no stored snapshots
func TestMonitoringDrift_NoBaseline(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/drift", nil)
	w := httptest.NewRecorder()

	handler.MonitoringDrift(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	data := dataMap(t, decodeResponse(t, w))
	if count, ok := data["count"].(float64); !ok || int(count) != 0 {
		t.Errorf("Expected 0 alerts without a baseline, got %v", data["count"])
	}
}

// TestMonitoringStatus_Success tests the monitor state report
func TestMonitoringStatus_Success(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/status", nil)
	w := httptest.NewRecorder()

	handler.MonitoringStatus(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	data := dataMap(t, decodeResponse(t, w))
	if data["monitoring_active"] != true {
		t.Error("Expected monitoring_active true")
	}
	if path, ok := data["log_path"].(string); !ok || path == "" {
		t.Error("Expected a non-empty log path")
	}

	targets, ok := data["evaluation_targets"].(map[string]interface{})
	if !ok || len(targets) == 0 {
		t.Errorf("Expected the quality-target table, got %v", data["evaluation_targets"])
	}

	if buffered, ok := data["buffer_size"].(float64); !ok || int(buffered) != 0 {
		t.Errorf("Expected an empty prediction buffer, got %v", data["buffer_size"])
	}
}
