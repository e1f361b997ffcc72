// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

func testTreeLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewSupervisorTree(t *testing.T) {
	t.Run("builds the three-layer tree", func(t *testing.T) {
		tree, err := NewSupervisorTree(testTreeLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("NewSupervisorTree() error = %v", err)
		}
		if tree.Root() == nil {
			t.Error("Root() = nil, want root supervisor")
		}
		if tree.data == nil || tree.monitoring == nil || tree.api == nil {
			t.Error("expected all three layer supervisors to be built")
		}
	})

	t.Run("zero config gets defaults", func(t *testing.T) {
		tree, err := NewSupervisorTree(testTreeLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("NewSupervisorTree() error = %v", err)
		}

		if tree.config.FailureThreshold != 5.0 {
			t.Errorf("FailureThreshold = %f, want 5.0", tree.config.FailureThreshold)
		}
		if tree.config.FailureDecay != 30.0 {
			t.Errorf("FailureDecay = %f, want 30.0", tree.config.FailureDecay)
		}
		if tree.config.FailureBackoff != 15*time.Second {
			t.Errorf("FailureBackoff = %v, want 15s", tree.config.FailureBackoff)
		}
		if tree.config.ShutdownTimeout != 10*time.Second {
			t.Errorf("ShutdownTimeout = %v, want 10s", tree.config.ShutdownTimeout)
		}
	})
}

func TestDefaultTreeConfig(t *testing.T) {
	config := DefaultTreeConfig()

	if config.FailureThreshold != 5.0 {
		t.Errorf("FailureThreshold = %f, want 5.0", config.FailureThreshold)
	}
	if config.FailureDecay != 30.0 {
		t.Errorf("FailureDecay = %f, want 30.0", config.FailureDecay)
	}
	if config.FailureBackoff != 15*time.Second {
		t.Errorf("FailureBackoff = %v, want 15s", config.FailureBackoff)
	}
	if config.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", config.ShutdownTimeout)
	}
}

// TestTreeLayers verifies each layer accessor wires services into a
// supervisor that actually runs them.
func TestTreeLayers(t *testing.T) {
	tests := []struct {
		name string
		add  func(*SupervisorTree, *probeService)
	}{
		{"data", func(tr *SupervisorTree, p *probeService) { tr.AddDataService(p) }},
		{"monitoring", func(tr *SupervisorTree, p *probeService) { tr.AddMonitoringService(p) }},
		{"api", func(tr *SupervisorTree, p *probeService) { tr.AddAPIService(p) }},
	}

	for _, tt := range tests {
		t.Run(tt.name+" layer starts its services", func(t *testing.T) {
			tree, err := NewSupervisorTree(testTreeLogger(), TreeConfig{ShutdownTimeout: time.Second})
			if err != nil {
				t.Fatalf("NewSupervisorTree() error = %v", err)
			}

			svc := newProbeService(tt.name + "-probe")
			tt.add(tree, svc)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			go func() { _ = tree.Serve(ctx) }()

			svc.waitStarts(t, 1, time.Second)
		})
	}
}

func TestTreeShutdown(t *testing.T) {
	t.Run("cancel stops every layer", func(t *testing.T) {
		tree, err := NewSupervisorTree(testTreeLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   100 * time.Millisecond,
			ShutdownTimeout:  time.Second,
		})
		if err != nil {
			t.Fatalf("NewSupervisorTree() error = %v", err)
		}

		store := newProbeService("store-maintenance")
		rollup := newProbeService("daily-rollup")
		server := newProbeService("http-server")
		tree.AddDataService(store)
		tree.AddMonitoringService(rollup)
		tree.AddAPIService(server)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- tree.Serve(ctx) }()

		store.waitStarts(t, 1, time.Second)
		rollup.waitStarts(t, 1, time.Second)
		server.waitStarts(t, 1, time.Second)
		cancel()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() = %v, want nil or context.Canceled", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("tree did not shut down after cancel")
		}
	})

	t.Run("ServeBackground delivers the exit error", func(t *testing.T) {
		tree, err := NewSupervisorTree(testTreeLogger(), TreeConfig{ShutdownTimeout: time.Second})
		if err != nil {
			t.Fatalf("NewSupervisorTree() error = %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		select {
		case err := <-tree.ServeBackground(ctx):
			if err != nil && !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("ServeBackground() delivered %v, want nil or context.DeadlineExceeded", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("no exit delivered on the background channel")
		}
	})
}

// TestTreeFailureIsolation verifies a crashing service in one layer is
// restarted without disturbing services in the other layers.
func TestTreeFailureIsolation(t *testing.T) {
	tree, err := NewSupervisorTree(testTreeLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}

	flaky := newFlakyService("flaky-rollup", 2)
	stable := newProbeService("stable-server")
	tree.AddMonitoringService(flaky)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	go func() { _ = tree.Serve(ctx) }()

	// Two crashes plus the healthy run
	flaky.waitStarts(t, 3, 2*time.Second)
	stable.waitStarts(t, 1, time.Second)
	if got := stable.startCount(); got != 1 {
		t.Errorf("stable service started %d times, want 1", got)
	}
}
