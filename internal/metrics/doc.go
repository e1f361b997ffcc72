// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus client
library, exposing metrics for monitoring suggestion quality, provider health,
and system performance.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Suggestion requests by method, with fallback and personalization counts
  - Signal-provider calls, latency, and circuit breaker state
  - Preference store and prediction log flushes
  - Drift alerts raised by the monitor

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Suggestion Metrics:
  - suggestions_total: Suggestion requests served (counter)
    Labels: method, personalized
  - suggestion_duration_seconds: End-to-end suggestion latency (histogram)
    Labels: method
  - suggestion_fallbacks_total: Requests answered by the fallback list (counter)
  - suggestion_batch_size: Texts per batch request (histogram)

Provider Metrics:
  - provider_requests_total: Calls per signal provider (counter)
    Labels: provider, result (success, failure, rejected)
  - provider_request_duration_seconds: Provider call latency (histogram)
    Labels: provider
  - provider_breaker_state: Circuit breaker state (gauge)
    Labels: provider
    Values: 0=closed, 1=half-open, 2=open
  - provider_breaker_transitions_total: Breaker state transitions (counter)
    Labels: provider, from_state, to_state
  - provider_rate_limit_rejections_total: Outbound budget rejections (counter)
    Labels: provider

Personalization Metrics:
  - personalized_requests_total: Requests re-ranked from user history (counter)
  - preference_flushes_total: Preference store flushes (counter)
    Labels: result (success, failure)

Monitor Metrics:
  - predictions_logged_total: Prediction log entries buffered (counter)
  - prediction_log_flushes_total: Prediction log flushes (counter)
    Labels: result (success, failure)
  - feedback_recorded_total: User feedback attachments (counter)
    Labels: positive
  - monitor_buffer_depth: Entries waiting in the prediction buffer (gauge)
  - drift_alerts_total: Drift alerts raised (counter)
    Labels: type, direction

Evaluation Metrics:
  - evaluation_runs_total: Offline evaluation runs (counter)
    Labels: method
  - evaluation_duration_seconds: Evaluation run duration (histogram)

System Metrics:
  - app_info: Application version and build information (gauge)
    Labels: version, go_version
  - app_uptime_seconds: Application uptime (gauge)

# Usage

Helpers cover the common recording patterns:

	metrics.RecordAPIRequest("POST", "/api/v1/suggest", "200", duration)
	metrics.RecordProviderRequest("sentiment", "failure")
	metrics.RecordDriftAlert("confidence_drift", "down")

All collectors are registered with the default Prometheus registry at package
initialization via promauto, so importing this package is sufficient to expose
them through promhttp.Handler.
*/
package metrics
