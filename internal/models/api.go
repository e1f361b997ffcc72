// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"text": "great work", "suggestions": ["🎉", "👏", "💪"]},
//	  "metadata": {
//	    "timestamp": "2026-08-25T12:00:00Z",
//	    "latency_ms": 1.8
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "Text is required",
//	    "details": {"field": "Text"}
//	  },
//	  "metadata": {"timestamp": "2026-08-25T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability fields. LatencyMS measures
// handler execution, not just the ensemble pipeline, so it bounds the
// pipeline latencies reported inside suggestion payloads.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	LatencyMS float64   `json:"latency_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid request parameters or body
//   - INVALID_JSON: Request body failed to parse
//   - NOT_FOUND: Resource does not exist
//   - USER_NOT_FOUND: Unknown user identifier
//   - PROVIDER_ERROR: All suggestion providers failed
//   - EVALUATION_ERROR: Evaluation run could not complete
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - INTERNAL_ERROR: Unexpected server failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
