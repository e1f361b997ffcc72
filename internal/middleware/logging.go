// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/affectus/internal/logging"
)

// slowRequestThreshold marks requests worth flagging. The suggestion pipeline
// budgets two seconds for remote providers, so anything above that means a
// provider timed out or the host is overloaded.
const slowRequestThreshold = 2500 * time.Millisecond

// RequestLogger logs one line per completed request with method, path, status,
// and duration. Normal traffic logs at debug so production stays quiet; server
// errors are raised to error level and slow requests to warn. The request_id
// and correlation_id placed in the context by RequestID appear on every line.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		logger := logging.Ctx(r.Context())

		var evt *zerolog.Event
		switch {
		case ww.statusCode >= http.StatusInternalServerError:
			evt = logger.Error()
		case duration > slowRequestThreshold:
			evt = logger.Warn()
		default:
			evt = logger.Debug()
		}

		evt.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.statusCode).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("Request completed")
	})
}
