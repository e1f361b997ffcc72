// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for request ID tracking,
structured request logging, Prometheus metrics, security headers, and gzip
compression. Cross-cutting policy middleware (CORS, rate limiting, panic
recovery) comes from the chi ecosystem and is wired directly in the router;
this package holds the pieces that need application context.

Key Components:

  - RequestID: UUID-based request tracking with logging context integration
  - RequestLogger: Per-request zerolog line with status, duration, slow-request warnings
  - PrometheusMetrics: HTTP request/response instrumentation via internal/metrics
  - SecurityHeaders: nosniff, frame denial, no-store caching, HSTS behind TLS
  - Compression: Pooled gzip encoding for JSON payloads

Middleware Stack:

The router applies middleware in this order:

	r.Use(middleware.RequestID)         // Tracing context first
	r.Use(middleware.RequestLogger)     // Logs see request_id
	r.Use(chimiddleware.RealIP)         // Real client IP behind proxies
	r.Use(chimiddleware.Recoverer)      // Panic recovery
	r.Use(corsHandler)                  // CORS preflight handling
	// per-group: rate limiting, security headers, metrics, compression

Usage Example - Request ID:

	r.Use(middleware.RequestID)

	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    logging.Ctx(r.Context()).Info().Msg("Processing request")
	}

Usage Example - Metrics:

	r.Use(middleware.PrometheusMetrics)

	// Exposes per-route counters and duration histograms labeled by the
	// chi route pattern, e.g. /api/v1/users/{id}/stats rather than the
	// concrete path, keeping label cardinality bounded.

Thread Safety:

All middleware components are thread-safe:

  - Compression uses a sync.Pool of gzip writers
  - Request ID uses context.Context (immutable)
  - Prometheus metrics use atomic collector operations

See Also:

  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
  - internal/logging: Context-aware structured logging
*/
package middleware
