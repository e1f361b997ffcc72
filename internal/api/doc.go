// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

/*
Package api provides the HTTP REST API layer for Affectus.

This package implements the suggestion-serving endpoints and the
operational surface around them. It is the only interface between clients
and the backend packages (ensemble, personalize, monitor, evaluation).

Key Components:

  - Router: Chi route configuration and middleware stack integration
  - Handler: Request handlers for all API endpoints
  - ChiMiddleware: CORS and per-group rate limiting
  - Response formatting: Standardized JSON envelope with metadata
  - Error handling: Consistent error responses with machine-readable codes

API Categories:

 1. Core (/, /health, /api/v1/emotions, /api/v1/stats):
    Service discovery, provider circuit health, vocabulary, configuration.

 2. Suggestions (/api/v1/suggest, /suggest/detailed, /suggest/batch):
    The serving pipeline. Ensemble combination, optional per-user
    re-ranking, prediction logging.

 3. Feedback (/api/v1/feedback):
    Attaches outcomes to logged predictions and updates preference
    profiles.

 4. Users (/api/v1/users/{id}/...):
    Per-user stats, emotion history, and data deletion.

 5. Evaluation (/api/v1/evaluation/...):
    On-demand ranking-quality evaluation, method comparison, and
    inter-rater agreement. Strictly rate limited.

 6. Monitoring (/api/v1/monitoring/...):
    Daily rollups, weekly reports, drift checks, monitor status.

Every response uses the models.APIResponse envelope: a status string, the
payload under data, an optional structured error, and metadata carrying
the server timestamp and handler latency.

Rate limiting is per-IP via go-chi/httprate with distinct budgets per
route group; Prometheus HTTP metrics are recorded for every /api/v1
request. Swagger documentation is served at /swagger/index.html and the
Prometheus scrape endpoint at /metrics.
*/
package api
