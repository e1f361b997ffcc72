// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

/*
Package services provides suture.Service wrappers for Affectus components.

This package adapts existing application components to the suture v4 supervision
model, translating various lifecycle patterns (Flush/Cleanup loops, ListenAndServe)
into suture's context-aware Serve pattern.

# Overview

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

The wrappers handle:
  - Lifecycle translation (ticker loops, ListenAndServe to Serve pattern)
  - Graceful shutdown via context cancellation
  - Error propagation for supervisor restart decisions
  - Service identification via fmt.Stringer

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Monitor Maintenance (MonitorService):
  - Wraps the prediction monitor's periodic maintenance
  - Flushes buffered prediction records on a short interval
  - Computes daily metric rollups and checks for drift on a longer interval

Preference Cleanup (CleanupService):
  - Wraps the personalization store's retention cleanup
  - Prunes interactions older than the retention window
  - Runs on a configurable schedule (default daily)

# Usage Example

Creating and registering services:

	import (
	    "net/http"
	    "time"

	    "github.com/tomtom215/affectus/internal/supervisor"
	    "github.com/tomtom215/affectus/internal/supervisor/services"
	)

	func setupSupervisor(server *http.Server, mon *monitor.Monitor, pers *personalize.Personalizer) {
	    tree, _ := supervisor.NewSupervisorTree(logger, config)

	    // HTTP server with 10s shutdown timeout
	    httpSvc := services.NewHTTPServerService(server, 10*time.Second)
	    tree.AddAPIService(httpSvc)

	    // Monitor flush and rollup loop
	    monSvc := services.NewMonitorService(mon, services.MonitorServiceConfig{
	        FlushInterval:  30 * time.Second,
	        RollupInterval: time.Hour,
	    }, zlog)
	    tree.AddMonitoringService(monSvc)

	    // Preference retention cleanup
	    cleanSvc := services.NewCleanupService(pers, services.CleanupServiceConfig{
	        CleanupInterval: 24 * time.Hour,
	    }, zlog)
	    tree.AddDataService(cleanSvc)

	    // Start supervision
	    tree.Serve(ctx)
	}

# Lifecycle Patterns

The package handles two common lifecycle patterns:

Ticker Pattern:

	type Maintainer interface {
	    Flush() error
	}

	// Wrapped as:
	func (s *Service) Serve(ctx context.Context) error {
	    ticker := time.NewTicker(s.interval)
	    defer ticker.Stop()
	    for {
	        select {
	        case <-ctx.Done():
	            return ctx.Err()
	        case <-ticker.C:
	            s.maintain(ctx)
	        }
	    }
	}

ListenAndServe Pattern:

	type Listener interface {
	    ListenAndServe() error
	    Shutdown(ctx context.Context) error
	}

	// Wrapped as:
	func (s *Service) Serve(ctx context.Context) error {
	    go s.server.ListenAndServe()
	    <-ctx.Done()
	    return s.server.Shutdown(shutdownCtx)
	}

# Error Handling

Return values determine supervisor behavior:

	nil         -> Service stopped cleanly, will not restart
	error       -> Service crashed, supervisor will restart
	ctx.Err()   -> Shutdown requested, normal termination

Maintenance services treat individual operation failures as transient: a
failed flush or rollup is logged at Warn and retried on the next tick
rather than crashing the service. Only unrecoverable conditions should
propagate as errors and trigger a supervisor restart.

Example error handling:

	func (s *MonitorService) maintain(ctx context.Context) {
	    if err := s.engine.Flush(); err != nil {
	        // Transient - log and retry on next tick
	        s.logger.Warn().Err(err).Msg("flush failed")
	    }
	}

# Service Identification

All services implement fmt.Stringer for logging:

	func (s *HTTPServerService) String() string {
	    return "http-server"
	}

Suture uses this for log messages:

	INFO http-server: starting
	INFO http-server: stopped
	ERROR http-server: restarting after failure

# Testing

Services can be tested with mock components:

	type MockServer struct {
	    started  bool
	    shutdown bool
	}

	func (m *MockServer) ListenAndServe() error {
	    m.started = true
	    <-time.After(time.Hour) // Block until shutdown
	    return nil
	}

	func (m *MockServer) Shutdown(ctx context.Context) error {
	    m.shutdown = true
	    return nil
	}

	func TestHTTPService(t *testing.T) {
	    mock := &MockServer{}
	    svc := services.NewHTTPServerService(mock, time.Second)

	    ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	    defer cancel()

	    svc.Serve(ctx)

	    if !mock.started { t.Error("server not started") }
	    if !mock.shutdown { t.Error("server not shutdown") }
	}

# Thread Safety

All service wrappers are safe for concurrent use:
  - State is protected by mutexes where needed
  - Context cancellation is handled atomically
  - Multiple Serve calls are not supported (undefined behavior)

# See Also

  - internal/supervisor: SupervisorTree that manages these services
  - github.com/thejerf/suture/v4: Underlying supervision library
  - internal/monitor: Prediction monitor implementation
  - internal/personalize: Personalization store implementation
*/
package services
