// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// mockPreferenceStore is a mock implementation for testing.
type mockPreferenceStore struct {
	mu           sync.Mutex
	cleanupCalls int
	removed      int
	cleanupErr   error
}

func (m *mockPreferenceStore) Cleanup() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleanupCalls++
	return m.removed, m.cleanupErr
}

func (m *mockPreferenceStore) getCleanupCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleanupCalls
}

func TestCleanupService_String(t *testing.T) {
	logger := zerolog.Nop()
	store := &mockPreferenceStore{}
	cfg := CleanupServiceConfig{
		CleanupInterval: time.Hour,
	}

	service := NewCleanupService(store, cfg, logger)

	if got := service.String(); got != "preference-cleanup" {
		t.Errorf("String() = %q, want %q", got, "preference-cleanup")
	}
}

func TestCleanupService_CleanupOnStartup(t *testing.T) {
	logger := zerolog.Nop()
	store := &mockPreferenceStore{removed: 7}
	cfg := CleanupServiceConfig{
		CleanupOnStartup: true,
		CleanupInterval:  time.Hour, // Long interval to avoid scheduled pruning
	}

	service := NewCleanupService(store, cfg, logger)

	// Run service briefly
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_ = service.Serve(ctx)

	// Should have pruned once on startup
	if got := store.getCleanupCalls(); got != 1 {
		t.Errorf("Cleanup() called %d times, want 1", got)
	}
}

func TestCleanupService_NoCleanupOnStartup(t *testing.T) {
	logger := zerolog.Nop()
	store := &mockPreferenceStore{}
	cfg := CleanupServiceConfig{
		CleanupOnStartup: false,
		CleanupInterval:  time.Hour,
	}

	service := NewCleanupService(store, cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_ = service.Serve(ctx)

	if got := store.getCleanupCalls(); got != 0 {
		t.Errorf("Cleanup() called %d times, want 0", got)
	}
}

func TestCleanupService_ScheduledCleanup(t *testing.T) {
	logger := zerolog.Nop()
	store := &mockPreferenceStore{}
	cfg := CleanupServiceConfig{
		CleanupOnStartup: false,
		CleanupInterval:  50 * time.Millisecond, // Short interval for testing
	}

	service := NewCleanupService(store, cfg, logger)

	// Run service long enough for 2 scheduled prunes
	ctx, cancel := context.WithTimeout(context.Background(), 130*time.Millisecond)
	defer cancel()

	_ = service.Serve(ctx)

	// Should have pruned at least twice (at 50ms and 100ms)
	if got := store.getCleanupCalls(); got < 2 {
		t.Errorf("Cleanup() called %d times, want >= 2", got)
	}
}

func TestCleanupService_GracefulShutdown(t *testing.T) {
	logger := zerolog.Nop()
	store := &mockPreferenceStore{}
	cfg := CleanupServiceConfig{
		CleanupOnStartup: true,
		CleanupInterval:  time.Hour,
	}

	service := NewCleanupService(store, cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- service.Serve(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	// Should complete gracefully
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve() did not complete in time")
	}
}

func TestCleanupService_CleanupError(t *testing.T) {
	logger := zerolog.Nop()
	store := &mockPreferenceStore{
		cleanupErr: errors.New("store file locked"),
	}
	cfg := CleanupServiceConfig{
		CleanupOnStartup: true,
		CleanupInterval:  time.Hour,
	}

	service := NewCleanupService(store, cfg, logger)

	// Run service briefly - should continue despite cleanup error
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_ = service.Serve(ctx)

	// Should have attempted the prune despite the error
	if got := store.getCleanupCalls(); got != 1 {
		t.Errorf("Cleanup() called %d times, want 1", got)
	}
}
