// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/affectus/internal/ensemble"
)

func TestRateLimited_Name(t *testing.T) {
	t.Parallel()

	r := NewRateLimited(&stubProvider{name: "semantic"}, 10, 5)

	if r.Name() != "semantic" {
		t.Errorf("Name() = %q, want %q", r.Name(), "semantic")
	}
}

func TestRateLimited_AllowsWithinBurst(t *testing.T) {
	t.Parallel()

	inner := &stubProvider{name: "bursty", result: &ensemble.Result{Emojis: []string{"😊"}}}
	r := NewRateLimited(inner, 0.01, 2)

	for i := 0; i < 2; i++ {
		if _, err := r.Suggest(context.Background(), ensemble.Query{Text: "hi"}, 3); err != nil {
			t.Fatalf("call %d: error = %v", i+1, err)
		}
	}
	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2", inner.calls)
	}
}

func TestRateLimited_RejectsWhenExhausted(t *testing.T) {
	t.Parallel()

	inner := &stubProvider{name: "limited", result: &ensemble.Result{Emojis: []string{"😊"}}}
	// Refill is ~100s per token, so the second immediate call must reject.
	r := NewRateLimited(inner, 0.01, 1)

	if _, err := r.Suggest(context.Background(), ensemble.Query{Text: "hi"}, 3); err != nil {
		t.Fatalf("first call: error = %v", err)
	}

	_, err := r.Suggest(context.Background(), ensemble.Query{Text: "hi"}, 3)
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("second call error = %v, want %v", err, ErrRateLimited)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1 (rejected call must not reach provider)", inner.calls)
	}
}

func TestRateLimited_UnlimitedWhenRateNonPositive(t *testing.T) {
	t.Parallel()

	inner := &stubProvider{name: "unlimited", result: &ensemble.Result{Emojis: []string{"😊"}}}
	r := NewRateLimited(inner, 0, 1)

	for i := 0; i < 50; i++ {
		if _, err := r.Suggest(context.Background(), ensemble.Query{Text: "hi"}, 3); err != nil {
			t.Fatalf("call %d: error = %v", i+1, err)
		}
	}
	if inner.calls != 50 {
		t.Errorf("inner calls = %d, want 50", inner.calls)
	}
}

func TestRateLimited_PassesThroughInnerError(t *testing.T) {
	t.Parallel()

	errStub := errors.New("upstream down")
	r := NewRateLimited(&stubProvider{name: "broken", err: errStub}, 10, 5)

	_, err := r.Suggest(context.Background(), ensemble.Query{Text: "hi"}, 3)
	if !errors.Is(err, errStub) {
		t.Errorf("error = %v, want %v", err, errStub)
	}
}
