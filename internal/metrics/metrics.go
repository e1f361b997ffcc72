// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Suggestion Metrics
	SuggestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestions_total",
			Help: "Total number of suggestion requests served",
		},
		[]string{"method", "personalized"}, // method: "voting", "weighted"
	)

	SuggestionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "suggestion_duration_seconds",
			Help:    "End-to-end suggestion latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method"},
	)

	SuggestionFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "suggestion_fallbacks_total",
			Help: "Total number of requests answered by the fallback emoji list",
		},
	)

	SuggestionBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suggestion_batch_size",
			Help:    "Number of texts in batch suggestion requests",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)

	// Provider Metrics
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of calls per signal provider",
		},
		[]string{"provider", "result"}, // result: "success", "failure", "rejected"
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Signal provider call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	ProviderBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "provider_breaker_state",
			Help: "Provider circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"provider"},
	)

	ProviderBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_breaker_transitions_total",
			Help: "Total number of provider circuit breaker state transitions",
		},
		[]string{"provider", "from_state", "to_state"},
	)

	ProviderRateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_rate_limit_rejections_total",
			Help: "Total number of provider calls rejected by the outbound rate limiter",
		},
		[]string{"provider"},
	)

	// Personalization Metrics
	PersonalizedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "personalized_requests_total",
			Help: "Total number of suggestion requests re-ranked from user history",
		},
	)

	PreferenceFlushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preference_flushes_total",
			Help: "Total number of preference store flushes",
		},
		[]string{"result"}, // "success", "failure"
	)

	// Monitor Metrics
	PredictionsLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "predictions_logged_total",
			Help: "Total number of prediction log entries buffered",
		},
	)

	PredictionLogFlushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_log_flushes_total",
			Help: "Total number of prediction log flushes",
		},
		[]string{"result"}, // "success", "failure"
	)

	FeedbackRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_recorded_total",
			Help: "Total number of user feedback attachments",
		},
		[]string{"positive"}, // "true", "false"
	)

	MonitorBufferDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "monitor_buffer_depth",
			Help: "Current number of entries waiting in the prediction buffer",
		},
	)

	DriftAlerts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drift_alerts_total",
			Help: "Total number of drift alerts raised",
		},
		[]string{"type", "direction"}, // type: "confidence_drift", "latency_drift"
	)

	// Evaluation Metrics
	EvaluationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evaluation_runs_total",
			Help: "Total number of offline evaluation runs",
		},
		[]string{"method"},
	)

	EvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "evaluation_duration_seconds",
			Help:    "Offline evaluation run duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSuggestion records one served suggestion request
func RecordSuggestion(method string, personalized bool, duration time.Duration) {
	SuggestionsTotal.WithLabelValues(method, boolLabel(personalized)).Inc()
	SuggestionDuration.WithLabelValues(method).Observe(duration.Seconds())
	if personalized {
		PersonalizedRequests.Inc()
	}
}

// RecordFallback records a request answered by the fallback emoji list
func RecordFallback() {
	SuggestionFallbacks.Inc()
}

// RecordBatchSize records the number of texts in a batch request
func RecordBatchSize(size int) {
	SuggestionBatchSize.Observe(float64(size))
}

// RecordProviderRequest records the outcome of one provider call
func RecordProviderRequest(provider, result string) {
	ProviderRequests.WithLabelValues(provider, result).Inc()
}

// RecordProviderDuration records the latency of one provider call
func RecordProviderDuration(provider string, duration time.Duration) {
	ProviderRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordPreferenceFlush records a preference store flush outcome
func RecordPreferenceFlush(err error) {
	PreferenceFlushes.WithLabelValues(resultLabel(err)).Inc()
}

// RecordPredictionLogged records a prediction entering the monitor buffer
func RecordPredictionLogged(bufferDepth int) {
	PredictionsLogged.Inc()
	MonitorBufferDepth.Set(float64(bufferDepth))
}

// RecordPredictionLogFlush records a prediction log flush outcome
func RecordPredictionLogFlush(err error, bufferDepth int) {
	PredictionLogFlushes.WithLabelValues(resultLabel(err)).Inc()
	MonitorBufferDepth.Set(float64(bufferDepth))
}

// RecordFeedback records a user feedback attachment
func RecordFeedback(positive bool) {
	FeedbackRecorded.WithLabelValues(boolLabel(positive)).Inc()
}

// RecordDriftAlert records a raised drift alert
func RecordDriftAlert(alertType, direction string) {
	DriftAlerts.WithLabelValues(alertType, direction).Inc()
}

// RecordEvaluation records an offline evaluation run
func RecordEvaluation(method string, duration time.Duration) {
	EvaluationRuns.WithLabelValues(method).Inc()
	EvaluationDuration.Observe(duration.Seconds())
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
