// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package evaluation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// stubSuggester returns canned predictions per text and records call shapes.
type stubSuggester struct {
	responses  map[string][]string
	err        error
	lastTopK   int
	lastMethod string
	calls      int
}

func (s *stubSuggester) Suggest(_ context.Context, text string, topK int, method string) ([]string, error) {
	s.calls++
	s.lastTopK = topK
	s.lastMethod = method
	if s.err != nil {
		return nil, s.err
	}
	return s.responses[text], nil
}

func TestEvaluatePerfectModel(t *testing.T) {
	t.Parallel()

	stub := &stubSuggester{responses: map[string][]string{
		"great day":  {"😊", "🎉"},
		"awful news": {"😢", "😭"},
	}}
	samples := []Sample{
		{Text: "great day", Truth: []string{"😊", "🎉"}},
		{Text: "awful news", Truth: []string{"😢", "😭"}},
	}

	report, err := Evaluate(context.Background(), stub, samples, DefaultOptions())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if report.NumSamples != 2 {
		t.Errorf("NumSamples = %d, want 2", report.NumSamples)
	}
	for name, got := range map[string]float64{
		"precision": report.Precision,
		"recall":    report.Recall,
		"hit_rate":  report.HitRate,
		"mrr":       report.MRR,
		"ndcg":      report.NDCG,
	} {
		if !almostEqual(got, 1.0) {
			t.Errorf("%s = %v, want 1.0", name, got)
		}
	}
	if report.Details != nil {
		t.Error("details should be omitted without verbose")
	}
}

func TestEvaluateMixedResults(t *testing.T) {
	t.Parallel()

	stub := &stubSuggester{responses: map[string][]string{
		"hit":  {"😊"},
		"miss": {"😄"},
	}}
	samples := []Sample{
		{Text: "hit", Truth: []string{"😊"}},
		{Text: "miss", Truth: []string{"😢"}},
	}

	report, err := Evaluate(context.Background(), stub, samples, DefaultOptions())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if !almostEqual(report.HitRate, 0.5) {
		t.Errorf("HitRate = %v, want 0.5", report.HitRate)
	}
	if !almostEqual(report.MRR, 0.5) {
		t.Errorf("MRR = %v, want 0.5", report.MRR)
	}
}

func TestEvaluateVerboseDetails(t *testing.T) {
	t.Parallel()

	stub := &stubSuggester{responses: map[string][]string{
		"hello": {"😊", "😄"},
	}}
	samples := []Sample{{Text: "hello", Truth: []string{"😊"}}}

	opts := DefaultOptions()
	opts.Verbose = true

	report, err := Evaluate(context.Background(), stub, samples, opts)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if len(report.Details) != 1 {
		t.Fatalf("expected 1 detail entry, got %d", len(report.Details))
	}
	detail := report.Details[0]
	if detail.Text != "hello" {
		t.Errorf("detail.Text = %q, want hello", detail.Text)
	}
	if !detail.Hit {
		t.Error("detail.Hit = false, want true")
	}
	if !almostEqual(detail.Precision, 0.5) {
		t.Errorf("detail.Precision = %v, want 0.5", detail.Precision)
	}
}

func TestEvaluateAppliesDefaults(t *testing.T) {
	t.Parallel()

	stub := &stubSuggester{responses: map[string][]string{}}
	samples := []Sample{{Text: "x", Truth: []string{"😊"}}}

	if _, err := Evaluate(context.Background(), stub, samples, Options{}); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if stub.lastTopK != 3 {
		t.Errorf("suggester topK = %d, want default 3", stub.lastTopK)
	}
	if stub.lastMethod != "weighted" {
		t.Errorf("suggester method = %q, want default weighted", stub.lastMethod)
	}
}

func TestEvaluateEmptySamples(t *testing.T) {
	t.Parallel()

	stub := &stubSuggester{}
	report, err := Evaluate(context.Background(), stub, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if report.NumSamples != 0 {
		t.Errorf("NumSamples = %d, want 0", report.NumSamples)
	}
	if report.Precision != 0 || report.MRR != 0 {
		t.Error("empty sample set must produce zero metrics")
	}
	if stub.calls != 0 {
		t.Errorf("suggester called %d times for empty input", stub.calls)
	}
}

func TestEvaluatePropagatesSuggesterError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("provider down")
	stub := &stubSuggester{err: wantErr}
	samples := []Sample{{Text: "x", Truth: []string{"😊"}}}

	_, err := Evaluate(context.Background(), stub, samples, DefaultOptions())
	if !errors.Is(err, wantErr) {
		t.Errorf("Evaluate error = %v, want wrapped %v", err, wantErr)
	}
}

func TestEvaluateCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubSuggester{}
	samples := []Sample{{Text: "x", Truth: []string{"😊"}}}

	if _, err := Evaluate(ctx, stub, samples, DefaultOptions()); !errors.Is(err, context.Canceled) {
		t.Errorf("Evaluate error = %v, want context.Canceled", err)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	good := &stubSuggester{responses: map[string][]string{"x": {"😊"}}}
	bad := &stubSuggester{responses: map[string][]string{"x": {"😄"}}}
	samples := []Sample{{Text: "x", Truth: []string{"😊"}}}

	results, err := Compare(context.Background(), map[string]Suggester{
		"good": good,
		"bad":  bad,
	}, samples, DefaultOptions())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(results))
	}
	if !almostEqual(results["good"].HitRate, 1.0) {
		t.Errorf("good HitRate = %v, want 1.0", results["good"].HitRate)
	}
	if !almostEqual(results["bad"].HitRate, 0.0) {
		t.Errorf("bad HitRate = %v, want 0.0", results["bad"].HitRate)
	}
}

func TestCompareWrapsModelName(t *testing.T) {
	t.Parallel()

	failing := &stubSuggester{err: errors.New("boom")}
	samples := []Sample{{Text: "x", Truth: []string{"😊"}}}

	_, err := Compare(context.Background(), map[string]Suggester{"broken": failing}, samples, DefaultOptions())
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "broken") {
		t.Errorf("error %q should name the failing model", got)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	t.Parallel()

	stub := &stubSuggester{responses: map[string][]string{
		"happy text":         {"😊"},
		"angry long text":    {"😊"},
		"unannotated sample": {"😊"},
	}}
	samples := []Sample{
		{Text: "happy text", Truth: []string{"😊"}, Emotion: "joy"},
		{Text: "angry long text", Truth: []string{"😠"}, Emotion: "anger", Intensity: 0.9},
		{Text: "unannotated sample", Truth: []string{"😢"}},
	}

	analysis, err := AnalyzeErrors(context.Background(), stub, samples, DefaultOptions())
	if err != nil {
		t.Fatalf("AnalyzeErrors: %v", err)
	}

	if analysis.TotalErrors != 2 {
		t.Errorf("TotalErrors = %d, want 2", analysis.TotalErrors)
	}
	if analysis.TotalCorrect != 1 {
		t.Errorf("TotalCorrect = %d, want 1", analysis.TotalCorrect)
	}
	if !almostEqual(analysis.ErrorRate, 2.0/3.0) {
		t.Errorf("ErrorRate = %v, want 2/3", analysis.ErrorRate)
	}
	if analysis.ErrorsByEmotion["anger"] != 1 {
		t.Errorf("ErrorsByEmotion[anger] = %d, want 1", analysis.ErrorsByEmotion["anger"])
	}
	if analysis.ErrorsByEmotion["unknown"] != 1 {
		t.Errorf("ErrorsByEmotion[unknown] = %d, want 1", analysis.ErrorsByEmotion["unknown"])
	}
	if !almostEqual(analysis.EmotionErrorRates["joy"], 0.0) {
		t.Errorf("EmotionErrorRates[joy] = %v, want 0", analysis.EmotionErrorRates["joy"])
	}
	if !almostEqual(analysis.EmotionErrorRates["anger"], 1.0) {
		t.Errorf("EmotionErrorRates[anger] = %v, want 1", analysis.EmotionErrorRates["anger"])
	}

	// "angry long text" has 3 words, "unannotated sample" has 2.
	if !almostEqual(analysis.AvgErrorTextLength, 2.5) {
		t.Errorf("AvgErrorTextLength = %v, want 2.5", analysis.AvgErrorTextLength)
	}
	if len(analysis.ErrorSamples) != 2 {
		t.Errorf("ErrorSamples = %d entries, want 2", len(analysis.ErrorSamples))
	}
}

func TestAnalyzeErrorsCapsInspectionList(t *testing.T) {
	t.Parallel()

	responses := make(map[string][]string)
	var samples []Sample
	for i := 0; i < 15; i++ {
		text := fmt.Sprintf("miss %d", i)
		responses[text] = []string{"😊"}
		samples = append(samples, Sample{Text: text, Truth: []string{"😢"}})
	}

	analysis, err := AnalyzeErrors(context.Background(), &stubSuggester{responses: responses}, samples, DefaultOptions())
	if err != nil {
		t.Fatalf("AnalyzeErrors: %v", err)
	}

	if analysis.TotalErrors != 15 {
		t.Errorf("TotalErrors = %d, want 15", analysis.TotalErrors)
	}
	if len(analysis.ErrorSamples) != maxErrorSamples {
		t.Errorf("ErrorSamples = %d entries, want %d", len(analysis.ErrorSamples), maxErrorSamples)
	}
}
