// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// getHistogramSampleCount extracts the cumulative observation count from a
// Prometheus histogram. testutil.ToFloat64 only reads counters and gauges.
func getHistogramSampleCount(o prometheus.Observer) uint64 {
	h, ok := o.(prometheus.Histogram)
	if !ok {
		return 0
	}
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{
			name:       "successful suggestion request",
			method:     "POST",
			endpoint:   "/api/v1/suggest",
			statusCode: "200",
			duration:   25 * time.Millisecond,
		},
		{
			name:       "successful stats request",
			method:     "GET",
			endpoint:   "/api/v1/stats",
			statusCode: "200",
			duration:   2 * time.Millisecond,
		},
		{
			name:       "validation failure",
			method:     "POST",
			endpoint:   "/api/v1/suggest",
			statusCode: "400",
			duration:   1 * time.Millisecond,
		},
		{
			name:       "unknown user",
			method:     "GET",
			endpoint:   "/api/v1/users/{userID}/stats",
			statusCode: "200",
			duration:   5 * time.Millisecond,
		},
		{
			name:       "rate limited request",
			method:     "POST",
			endpoint:   "/api/v1/suggest/batch",
			statusCode: "429",
			duration:   1 * time.Millisecond,
		},
		{
			name:       "internal server error",
			method:     "POST",
			endpoint:   "/api/v1/monitoring/daily/{date}",
			statusCode: "500",
			duration:   150 * time.Millisecond,
		},
	}

	before := getHistogramSampleCount(APIRequestDuration.WithLabelValues("POST", "/api/v1/suggest"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Record the request - should not panic
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
		})
	}

	// Two table rows hit POST /api/v1/suggest; both observe a duration.
	after := getHistogramSampleCount(APIRequestDuration.WithLabelValues("POST", "/api/v1/suggest"))
	if after != before+2 {
		t.Errorf("APIRequestDuration sample count = %d, want %d", after, before+2)
	}
}

// TestTrackActiveRequest_RequestLifecycle simulates realistic request lifecycle
func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	// Simulate multiple concurrent requests
	for i := 0; i < 10; i++ {
		TrackActiveRequest(true) // Request starts
	}

	// Some requests complete
	for i := 0; i < 5; i++ {
		TrackActiveRequest(false) // Request ends
	}

	// More requests start
	for i := 0; i < 3; i++ {
		TrackActiveRequest(true)
	}

	// All remaining complete
	for i := 0; i < 8; i++ {
		TrackActiveRequest(false)
	}
}

// TestRecordSuggestion tests suggestion metric recording
func TestRecordSuggestion(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		personalized bool
		duration     time.Duration
	}{
		{
			name:         "weighted without personalization",
			method:       "weighted",
			personalized: false,
			duration:     12 * time.Millisecond,
		},
		{
			name:         "weighted with personalization",
			method:       "weighted",
			personalized: true,
			duration:     18 * time.Millisecond,
		},
		{
			name:         "voting without personalization",
			method:       "voting",
			personalized: false,
			duration:     9 * time.Millisecond,
		},
		{
			name:         "slow request",
			method:       "weighted",
			personalized: true,
			duration:     2 * time.Second,
		},
	}

	weightedBefore := getHistogramSampleCount(SuggestionDuration.WithLabelValues("weighted"))
	votingBefore := getHistogramSampleCount(SuggestionDuration.WithLabelValues("voting"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordSuggestion(tt.method, tt.personalized, tt.duration)
		})
	}

	if got := getHistogramSampleCount(SuggestionDuration.WithLabelValues("weighted")); got != weightedBefore+3 {
		t.Errorf("SuggestionDuration{weighted} sample count = %d, want %d", got, weightedBefore+3)
	}
	if got := getHistogramSampleCount(SuggestionDuration.WithLabelValues("voting")); got != votingBefore+1 {
		t.Errorf("SuggestionDuration{voting} sample count = %d, want %d", got, votingBefore+1)
	}
}

// TestRecordSuggestion_PersonalizedCounter verifies the personalized counter
// only advances for personalized requests
func TestRecordSuggestion_PersonalizedCounter(t *testing.T) {
	before := testutil.ToFloat64(PersonalizedRequests)

	RecordSuggestion("weighted", false, time.Millisecond)
	if got := testutil.ToFloat64(PersonalizedRequests); got != before {
		t.Errorf("PersonalizedRequests after non-personalized request = %v, want %v", got, before)
	}

	RecordSuggestion("weighted", true, time.Millisecond)
	if got := testutil.ToFloat64(PersonalizedRequests); got != before+1 {
		t.Errorf("PersonalizedRequests after personalized request = %v, want %v", got, before+1)
	}
}

// TestRecordProviderRequest tests provider call outcome recording
func TestRecordProviderRequest(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		result   string
	}{
		{
			name:     "keyword success",
			provider: "keyword",
			result:   "success",
		},
		{
			name:     "sentiment failure",
			provider: "sentiment",
			result:   "failure",
		},
		{
			name:     "semantic rejected by breaker",
			provider: "semantic",
			result:   "rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordProviderRequest(tt.provider, tt.result)
			RecordProviderDuration(tt.provider, 10*time.Millisecond)
		})
	}
}

// TestProviderBreakerMetrics tests breaker state and transition metrics
func TestProviderBreakerMetrics(t *testing.T) {
	ProviderBreakerState.WithLabelValues("sentiment").Set(0)
	ProviderBreakerState.WithLabelValues("sentiment").Set(2)
	ProviderBreakerTransitions.WithLabelValues("sentiment", "closed", "open").Inc()
	ProviderBreakerTransitions.WithLabelValues("sentiment", "open", "half-open").Inc()
	ProviderBreakerTransitions.WithLabelValues("sentiment", "half-open", "closed").Inc()

	if got := testutil.ToFloat64(ProviderBreakerState.WithLabelValues("sentiment")); got != 2 {
		t.Errorf("ProviderBreakerState = %v, want 2", got)
	}
}

// TestRecordPreferenceFlush verifies flush outcomes map to result labels
func TestRecordPreferenceFlush(t *testing.T) {
	okBefore := testutil.ToFloat64(PreferenceFlushes.WithLabelValues("success"))
	failBefore := testutil.ToFloat64(PreferenceFlushes.WithLabelValues("failure"))

	RecordPreferenceFlush(nil)
	RecordPreferenceFlush(errors.New("disk full"))

	if got := testutil.ToFloat64(PreferenceFlushes.WithLabelValues("success")); got != okBefore+1 {
		t.Errorf("success flushes = %v, want %v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(PreferenceFlushes.WithLabelValues("failure")); got != failBefore+1 {
		t.Errorf("failure flushes = %v, want %v", got, failBefore+1)
	}
}

// TestMonitorMetrics tests prediction log and feedback recording
func TestMonitorMetrics(t *testing.T) {
	RecordPredictionLogged(3)
	if got := testutil.ToFloat64(MonitorBufferDepth); got != 3 {
		t.Errorf("MonitorBufferDepth = %v, want 3", got)
	}

	RecordPredictionLogFlush(nil, 0)
	if got := testutil.ToFloat64(MonitorBufferDepth); got != 0 {
		t.Errorf("MonitorBufferDepth after flush = %v, want 0", got)
	}

	RecordPredictionLogFlush(errors.New("write failed"), 10)
	if got := testutil.ToFloat64(MonitorBufferDepth); got != 10 {
		t.Errorf("MonitorBufferDepth after failed flush = %v, want 10", got)
	}

	RecordFeedback(true)
	RecordFeedback(false)
	RecordDriftAlert("confidence_drift", "down")
	RecordDriftAlert("latency_drift", "up")
}

// TestRecordEvaluation tests evaluation run recording
func TestRecordEvaluation(t *testing.T) {
	RecordEvaluation("weighted", 500*time.Millisecond)
	RecordEvaluation("voting", 2*time.Second)
}

// TestBoolLabel tests the bool label helper
func TestBoolLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    bool
		expected string
	}{
		{
			name:     "true maps to true label",
			input:    true,
			expected: "true",
		},
		{
			name:     "false maps to false label",
			input:    false,
			expected: "false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := boolLabel(tt.input); got != tt.expected {
				t.Errorf("boolLabel(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestResultLabel tests the error result label helper
func TestResultLabel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error maps to success",
			err:      nil,
			expected: "success",
		},
		{
			name:     "non-nil error maps to failure",
			err:      errors.New("boom"),
			expected: "failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resultLabel(tt.err); got != tt.expected {
				t.Errorf("resultLabel(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

// TestConcurrentMetricRecording tests thread safety of metric recording
func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	numGoroutines := 100
	operationsPerGoroutine := 50

	// Test concurrent API request recording
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < operationsPerGoroutine; j++ {
				RecordAPIRequest("POST", "/api/v1/suggest", "200", time.Duration(j)*time.Millisecond)
			}
		}(i)
	}

	// Test concurrent suggestion recording
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < operationsPerGoroutine; j++ {
				RecordSuggestion("weighted", j%2 == 0, time.Duration(j)*time.Millisecond)
			}
		}(i)
	}

	// Test concurrent provider recording
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < operationsPerGoroutine; j++ {
				RecordProviderRequest("sentiment", "success")
			}
		}(i)
	}

	// Test concurrent active request tracking
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < operationsPerGoroutine; j++ {
				TrackActiveRequest(true)
				TrackActiveRequest(false)
			}
		}(i)
	}

	wg.Wait()
}

// TestMetricLabels verifies that metrics have proper labels configured
func TestMetricLabels(t *testing.T) {
	// Test APIRequestsTotal has correct labels
	APIRequestsTotal.WithLabelValues("GET", "/api/test", "200").Inc()
	APIRequestsTotal.WithLabelValues("POST", "/api/test", "500").Inc()

	// Test APIRateLimitHits has correct labels
	APIRateLimitHits.WithLabelValues("/api/v1/suggest").Inc()

	// Test SuggestionsTotal has correct labels
	SuggestionsTotal.WithLabelValues("voting", "false").Inc()
	SuggestionsTotal.WithLabelValues("weighted", "true").Inc()

	// Test ProviderRequests has correct labels
	ProviderRequests.WithLabelValues("keyword", "success").Inc()
	ProviderRequests.WithLabelValues("semantic", "rejected").Inc()

	// Test ProviderRateLimitRejections has correct labels
	ProviderRateLimitRejections.WithLabelValues("semantic").Inc()

	// Test DriftAlerts has correct labels
	DriftAlerts.WithLabelValues("confidence_drift", "up").Inc()
	DriftAlerts.WithLabelValues("latency_drift", "up").Inc()

	// Test AppInfo has correct labels
	AppInfo.WithLabelValues("1.0.0", "go1.25").Set(1)
}

// TestMetricsRegistration verifies all metrics register with descriptors
func TestMetricsRegistration(t *testing.T) {
	// Test that all metrics can be collected without panic
	collectors := []prometheus.Collector{
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		SuggestionsTotal,
		SuggestionDuration,
		SuggestionFallbacks,
		SuggestionBatchSize,
		ProviderRequests,
		ProviderRequestDuration,
		ProviderBreakerState,
		ProviderBreakerTransitions,
		ProviderRateLimitRejections,
		PersonalizedRequests,
		PreferenceFlushes,
		PredictionsLogged,
		PredictionLogFlushes,
		FeedbackRecorded,
		MonitorBufferDepth,
		DriftAlerts,
		EvaluationRuns,
		EvaluationDuration,
		AppInfo,
		AppUptime,
	}

	// Verify each metric can be described
	for _, m := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		m.Describe(ch)
		close(ch)

		// Should have at least one descriptor
		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("Metric has no descriptors")
		}
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	// Record some metrics
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)
	RecordSuggestion("weighted", true, time.Millisecond)

	// Verify we can lint the metrics (checks for consistency issues)
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}

// Benchmark tests for metrics performance

func BenchmarkRecordAPIRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordAPIRequest("POST", "/api/v1/suggest", "200", 25*time.Millisecond)
	}
}

func BenchmarkRecordSuggestion(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordSuggestion("weighted", true, 10*time.Millisecond)
	}
}

func BenchmarkRecordProviderRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordProviderRequest("sentiment", "success")
	}
}

func BenchmarkTrackActiveRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TrackActiveRequest(true)
		TrackActiveRequest(false)
	}
}
