// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/affectus/internal/config"
	"github.com/tomtom215/affectus/internal/middleware"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router with all routes configured
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	var chiMw *ChiMiddleware
	if cfg != nil {
		chiMw = NewChiMiddlewareFromConfig(cfg.API)
	} else {
		chiMw = NewChiMiddleware(DefaultChiMiddlewareConfig())
	}

	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// Setup configures all HTTP routes using Chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(middleware.RequestID)        // Add X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Compression)

	// ========================
	// Service Root & Health
	// ========================
	// Permissive rate limiting (1000/min) so monitoring probes are never
	// starved by API traffic
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/", router.handler.Root)
		r.Get("/health", router.handler.Health)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/emotions", router.handler.Emotions)
		r.Get("/stats", router.handler.Stats)

		r.Post("/suggest", router.handler.Suggest)
		r.Post("/suggest/detailed", router.handler.SuggestDetailed)
		r.Post("/suggest/batch", router.handler.SuggestBatch)

		r.Post("/feedback", router.handler.Feedback)

		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/stats", router.handler.UserStats)
			r.Get("/history", router.handler.UserHistory)
			r.Delete("/", router.handler.UserReset)
		})
	})

	// ========================
	// Evaluation Endpoints
	// ========================
	// Strict rate limiting (10/min): evaluation runs the whole ensemble
	// over up to a thousand samples per call
	r.Route("/api/v1/evaluation", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitEvaluation())
		r.Use(middleware.PrometheusMetrics)

		r.Post("/run", router.handler.EvaluationRun)
		r.Post("/compare", router.handler.EvaluationCompare)
		r.Post("/agreement", router.handler.EvaluationAgreement)
	})

	// ========================
	// Monitoring Endpoints
	// ========================
	r.Route("/api/v1/monitoring", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitMonitoring())
		r.Use(middleware.PrometheusMetrics)

		r.Post("/daily", router.handler.MonitoringDaily)
		r.Post("/daily/{date}", router.handler.MonitoringDaily)
		r.Get("/weekly", router.handler.MonitoringWeekly)
		r.Get("/drift", router.handler.MonitoringDrift)
		r.Get("/status", router.handler.MonitoringStatus)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
