// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package evaluation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/affectus/internal/emotion"
)

// ErrRaterLengthMismatch is returned when two rater label lists cannot be
// aligned item by item.
var ErrRaterLengthMismatch = errors.New("rater label counts differ")

// Suggester produces ranked emoji suggestions for a text. Implemented by
// the ensemble combiner and by individual providers under test.
type Suggester interface {
	Suggest(ctx context.Context, text string, topK int, method string) ([]string, error)
}

// Sample is one labeled evaluation example.
type Sample struct {
	// Text is the input the model is asked to suggest for.
	Text string `json:"text"`

	// Truth holds the rater-assigned emojis, empty entries removed.
	Truth []string `json:"emojis"`

	// Emotion optionally carries the annotated primary emotion.
	Emotion string `json:"emotion,omitempty"`

	// Intensity optionally carries the annotated intensity in [0, 1].
	Intensity float64 `json:"intensity,omitempty"`
}

// Options controls an evaluation run.
type Options struct {
	// K is the ranking cutoff applied to every positional metric.
	// Default: 3.
	K int

	// Method selects the combination method passed to the suggester.
	// Default: "weighted".
	Method string

	// Verbose includes per-sample results in the report.
	Verbose bool
}

// DefaultOptions returns the default evaluation options.
func DefaultOptions() Options {
	return Options{K: 3, Method: "weighted"}
}

// SampleResult records one sample's outcome for verbose reports.
type SampleResult struct {
	Text      string   `json:"text"`
	Truth     []string `json:"true"`
	Predicted []string `json:"pred"`
	Precision float64  `json:"precision"`
	Hit       bool     `json:"hit"`
}

// Report aggregates metric means over a sample set.
type Report struct {
	Precision  float64        `json:"precision"`
	Recall     float64        `json:"recall"`
	HitRate    float64        `json:"hit_rate"`
	MRR        float64        `json:"mrr"`
	NDCG       float64        `json:"ndcg"`
	K          int            `json:"k"`
	NumSamples int            `json:"num_samples"`
	Details    []SampleResult `json:"details,omitempty"`
}

// Evaluate runs the suggester over every sample and averages the metric
// suite. The suggester is asked for opts.K suggestions per sample; MRR still
// scans whatever it returns in full.
func Evaluate(ctx context.Context, s Suggester, samples []Sample, opts Options) (*Report, error) {
	if opts.K <= 0 {
		opts.K = 3
	}
	if opts.Method == "" {
		opts.Method = "weighted"
	}

	report := &Report{K: opts.K, NumSamples: len(samples)}
	if len(samples) == 0 {
		return report, nil
	}

	var sumPrecision, sumRecall, sumHitRate, sumMRR, sumNDCG float64

	for i, sample := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		predictions, err := s.Suggest(ctx, sample.Text, opts.K, opts.Method)
		if err != nil {
			return nil, fmt.Errorf("evaluate sample %d: %w", i, err)
		}

		prec := PrecisionAtK(sample.Truth, predictions, opts.K)
		hit := HitRateAtK(sample.Truth, predictions, opts.K)

		sumPrecision += prec
		sumRecall += RecallAtK(sample.Truth, predictions, opts.K)
		sumHitRate += hit
		sumMRR += MRR(sample.Truth, predictions)
		sumNDCG += NDCGAtK(sample.Truth, predictions, opts.K)

		if opts.Verbose {
			report.Details = append(report.Details, SampleResult{
				Text:      sample.Text,
				Truth:     sample.Truth,
				Predicted: predictions,
				Precision: prec,
				Hit:       hit > 0,
			})
		}
	}

	n := float64(len(samples))
	report.Precision = sumPrecision / n
	report.Recall = sumRecall / n
	report.HitRate = sumHitRate / n
	report.MRR = sumMRR / n
	report.NDCG = sumNDCG / n

	return report, nil
}

// Compare evaluates several named models on the same sample set. Models are
// processed in name order so partial failures are deterministic.
func Compare(ctx context.Context, models map[string]Suggester, samples []Sample, opts Options) (map[string]*Report, error) {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make(map[string]*Report, len(models))
	for _, name := range names {
		report, err := Evaluate(ctx, models[name], samples, opts)
		if err != nil {
			return nil, fmt.Errorf("compare model %q: %w", name, err)
		}
		results[name] = report
	}

	return results, nil
}

// ErrorSample describes one sample the model missed entirely.
type ErrorSample struct {
	Text       string   `json:"text"`
	Emotion    string   `json:"emotion"`
	Intensity  float64  `json:"intensity"`
	Truth      []string `json:"true"`
	Predicted  []string `json:"pred"`
	TextLength int      `json:"text_length"`
}

// ErrorAnalysis summarizes where a model fails.
type ErrorAnalysis struct {
	TotalErrors        int                `json:"total_errors"`
	TotalCorrect       int                `json:"total_correct"`
	ErrorRate          float64            `json:"error_rate"`
	ErrorsByEmotion    map[string]int     `json:"errors_by_emotion"`
	EmotionErrorRates  map[string]float64 `json:"emotion_error_rates"`
	AvgErrorTextLength float64            `json:"avg_error_text_length"`
	ErrorSamples       []ErrorSample      `json:"error_samples"`
}

// maxErrorSamples bounds the inspection list in an analysis report.
const maxErrorSamples = 10

// AnalyzeErrors runs the suggester over the samples and groups complete
// misses (hit rate zero at opts.K) by annotated emotion. Samples without an
// emotion annotation are grouped under "unknown". Text length is measured in
// whitespace-separated words.
func AnalyzeErrors(ctx context.Context, s Suggester, samples []Sample, opts Options) (*ErrorAnalysis, error) {
	if opts.K <= 0 {
		opts.K = 3
	}
	if opts.Method == "" {
		opts.Method = "weighted"
	}

	var errorSamples []ErrorSample
	errorEmotions := make(map[string]int)
	correctEmotions := make(map[string]int)
	totalErrors, totalCorrect := 0, 0
	sumErrorLength := 0

	for i, sample := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		predictions, err := s.Suggest(ctx, sample.Text, opts.K, opts.Method)
		if err != nil {
			return nil, fmt.Errorf("analyze sample %d: %w", i, err)
		}

		label := sample.Emotion
		if label == "" {
			label = emotion.Unknown.String()
		}

		if HitRateAtK(sample.Truth, predictions, opts.K) == 0 {
			totalErrors++
			errorEmotions[label]++
			words := len(strings.Fields(sample.Text))
			sumErrorLength += words
			if len(errorSamples) < maxErrorSamples {
				errorSamples = append(errorSamples, ErrorSample{
					Text:       sample.Text,
					Emotion:    label,
					Intensity:  sample.Intensity,
					Truth:      sample.Truth,
					Predicted:  predictions,
					TextLength: words,
				})
			}
		} else {
			totalCorrect++
			correctEmotions[label]++
		}
	}

	rates := make(map[string]float64)
	for label := range mergeKeys(errorEmotions, correctEmotions) {
		errCount := errorEmotions[label]
		total := errCount + correctEmotions[label]
		if total > 0 {
			rates[label] = float64(errCount) / float64(total)
		}
	}

	analysis := &ErrorAnalysis{
		TotalErrors:       totalErrors,
		TotalCorrect:      totalCorrect,
		ErrorsByEmotion:   errorEmotions,
		EmotionErrorRates: rates,
		ErrorSamples:      errorSamples,
	}
	if len(samples) > 0 {
		analysis.ErrorRate = float64(totalErrors) / float64(len(samples))
	}
	if totalErrors > 0 {
		analysis.AvgErrorTextLength = float64(sumErrorLength) / float64(totalErrors)
	}

	return analysis, nil
}

// mergeKeys returns the union of both maps' keys.
func mergeKeys(a, b map[string]int) map[string]struct{} {
	keys := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	return keys
}
