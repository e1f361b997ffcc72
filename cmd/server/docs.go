// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

// Package main provides the Affectus HTTP server
//
// Affectus API provides emoji suggestion ranking, decay-weighted
// personalization, offline evaluation, and prediction monitoring.
//
// @title Affectus API
// @version 1.0
// @description Emoji suggestion service combining multiple ranking providers with per-user personalization
// @description
// @description ## Features
// @description
// @description - **Ensemble Ranking**: Weighted and voting combination across keyword, sentiment, and semantic providers
// @description - **Personalization**: Decay-weighted re-ranking from per-user interaction history
// @description - **Batch Suggestions**: Up to 100 texts ranked in a single request
// @description - **Offline Evaluation**: Precision@k, Recall@k, Hit Rate, MRR, and NDCG over labeled samples
// @description - **Drift Monitoring**: Daily metric rollups with day-over-day drift alerts
// @description - **Graceful Degradation**: Keyword provider keeps serving when remote classifiers fail
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Evaluation endpoints carry a tighter budget (10/min); monitoring endpoints allow 60/min.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-25T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/affectus/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Core API endpoints for health checks, supported emotions, and aggregate statistics
//
// @tag.name Suggestions
// @tag.description Emoji suggestion endpoints: single, detailed (per-provider breakdown), and batch
//
// @tag.name Feedback
// @tag.description Interaction recording endpoints feeding personalization and prediction monitoring
//
// @tag.name Users
// @tag.description Per-user preference statistics, interaction history, and data deletion
//
// @tag.name Evaluation
// @tag.description Offline evaluation endpoints: ranking metrics, method comparison, and inter-rater agreement
//
// @tag.name Monitoring
// @tag.description Prediction monitoring endpoints: daily rollups, weekly reports, drift alerts, and status
package main
