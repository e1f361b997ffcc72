// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package middleware

import (
	"net/http"
)

// SecurityHeaders adds defensive headers to API responses.
//
// Headers added:
//   - X-Content-Type-Options: nosniff (prevents MIME type sniffing)
//   - X-Frame-Options: DENY (prevents clickjacking)
//   - Cache-Control: no-store (suggestion responses are per-user, never cacheable)
//   - Referrer-Policy: strict-origin-when-cross-origin (limits referrer information)
//
// Content-Security-Policy is not added since the service only serves JSON.
// HSTS is added conditionally when the request arrives over HTTPS or from a
// TLS-terminating proxy.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent embedding in frames (clickjacking protection)
		w.Header().Set("X-Frame-Options", "DENY")

		// Personalized suggestions must not be cached by intermediaries
		w.Header().Set("Cache-Control", "no-store")

		// Control referrer information
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Check X-Forwarded-Proto for reverse proxy setups
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			// 1 year max-age with includeSubDomains
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
