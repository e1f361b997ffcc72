// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

/*
Package main is the entry point for the Affectus server application.

Affectus is a self-hosted emoji suggestion service. It ranks emoji
candidates for input text by combining multiple suggestion providers,
re-ranks results from per-user interaction history with exponential decay,
evaluates ranking quality offline, and monitors live predictions for drift.

# Application Architecture

The server implements a layered architecture with Suture v4 process supervision:

	RootSupervisor ("affectus")
	├── DataSupervisor ("data-layer")
	│   └── Preference Cleanup (retention pruning)
	├── MonitoringSupervisor ("monitoring-layer")
	│   └── Monitor Maintenance (flush, rollup, drift checks)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (REST endpoints)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Personalization: JSON-backed preference store with decay re-ranking
 4. Monitor: Prediction logging, daily rollups, drift detection
 5. Ensemble: Suggestion combiner with keyword + optional remote providers
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	AFFECTUS_HTTP_PORT=8000           # HTTP server port
	AFFECTUS_LOG_LEVEL=info           # trace, debug, info, warn, error
	AFFECTUS_LOG_FORMAT=json          # json or console

	# Ensemble
	AFFECTUS_ENSEMBLE_METHOD=weighted # weighted or voting
	AFFECTUS_ENSEMBLE_WEIGHT_KEYWORD=0.25
	AFFECTUS_ENSEMBLE_WEIGHT_SENTIMENT=0.35
	AFFECTUS_ENSEMBLE_WEIGHT_SEMANTIC=0.40

	# Remote classifiers (optional, enable one or both)
	AFFECTUS_SENTIMENT_ENABLED=false
	AFFECTUS_SENTIMENT_URL=http://sentiment:8000/suggest
	AFFECTUS_SEMANTIC_ENABLED=false
	AFFECTUS_SEMANTIC_URL=http://semantic:8000/suggest

	# Personalization
	AFFECTUS_PERSONALIZATION_STORE_PATH=data/user_preferences.json
	AFFECTUS_PERSONALIZATION_DECAY_RATE=0.1
	AFFECTUS_PERSONALIZATION_WEIGHT=0.4

See internal/config for the complete configuration reference.

# Degraded Mode

Affectus runs without any remote classifier: the built-in keyword provider
always serves suggestions. Remote providers are guarded by circuit breakers,
so when one becomes unhealthy the ensemble degrades to the remaining
providers instead of failing requests:

	# Keyword-only (no external services)
	./affectus

	# With a sentiment classifier
	export AFFECTUS_SENTIMENT_ENABLED=true
	export AFFECTUS_SENTIMENT_URL=http://sentiment:8000/suggest
	./affectus

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (10s timeout)
 3. Flushes buffered prediction records to the log
 4. Persists the preference store
 5. Reports any services that failed to stop

# Usage Examples

Development:

	AFFECTUS_LOG_FORMAT=console AFFECTUS_LOG_LEVEL=debug go run ./cmd/server

Production:

	export AFFECTUS_ENVIRONMENT=production
	export AFFECTUS_CORS_ORIGINS=https://yourdomain.com
	./affectus

Docker:

	docker run -d \
	  -e AFFECTUS_SENTIMENT_ENABLED=true \
	  -e AFFECTUS_SENTIMENT_URL=http://sentiment:8000/suggest \
	  -v affectus-data:/data \
	  -p 8000:8000 \
	  ghcr.io/tomtom215/affectus

# API Documentation

Swagger documentation is available at /swagger/index.html when the server
is running. The API is organized into categories:

  - Core: Health checks, supported emotions, aggregate statistics
  - Suggestions: Single, detailed, and batch emoji suggestions
  - Feedback: Interaction recording for personalization and monitoring
  - Users: Per-user statistics, history, and data deletion
  - Evaluation: Offline ranking metrics, method comparison, rater agreement
  - Monitoring: Daily rollups, weekly reports, drift alerts

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/ensemble: Suggestion combination
  - internal/personalize: Preference storage and re-ranking
  - internal/monitor: Prediction logging and drift detection
*/
package main
