// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

// Package evaluation implements the offline ranking-quality metric suite and
// the sample-set evaluator used to grade suggestion models.
package evaluation

import "math"

// PrecisionAtK returns the fraction of the top-k predictions that appear in
// the ground truth.
//
// The denominator is the truncated prediction list length, not k, so a model
// that returns fewer than k suggestions is not penalized for the shortfall.
// Matching is set-based: duplicate predictions contribute to the denominator
// but can only match once.
func PrecisionAtK(truth, predictions []string, k int) float64 {
	preds := truncateAtK(predictions, k)
	if len(preds) == 0 {
		return 0.0
	}

	correct := intersectionSize(uniqueSet(truth), uniqueSet(preds))
	return float64(correct) / float64(len(preds))
}

// RecallAtK returns the fraction of distinct ground-truth labels found in the
// top-k predictions. Returns 0 when the truth is empty.
func RecallAtK(truth, predictions []string, k int) float64 {
	truthSet := uniqueSet(truth)
	if len(truthSet) == 0 {
		return 0.0
	}

	correct := intersectionSize(truthSet, uniqueSet(truncateAtK(predictions, k)))
	return float64(correct) / float64(len(truthSet))
}

// HitRateAtK returns 1 when at least one of the top-k predictions appears in
// the ground truth, and 0 otherwise.
func HitRateAtK(truth, predictions []string, k int) float64 {
	if intersectionSize(uniqueSet(truth), uniqueSet(truncateAtK(predictions, k))) > 0 {
		return 1.0
	}
	return 0.0
}

// MRR returns the reciprocal rank of the first correct prediction, scanning
// the full prediction list. Returns 0 when no prediction matches.
func MRR(truth, predictions []string) float64 {
	truthSet := uniqueSet(truth)

	for i, pred := range predictions {
		if _, ok := truthSet[pred]; ok {
			return 1.0 / float64(i+1)
		}
	}

	return 0.0
}

// NDCGAtK returns the Normalized Discounted Cumulative Gain at cutoff k with
// binary relevance.
//
// Each correct prediction at zero-based position i contributes 1/log2(i+2).
// The ideal DCG assumes the first min(len(truth), k) positions are all
// correct.
//
// Reference:
// Järvelin, K., & Kekäläinen, J. (2002). "Cumulated Gain-Based Evaluation of
// IR Techniques." ACM TOIS 20(4).
func NDCGAtK(truth, predictions []string, k int) float64 {
	preds := truncateAtK(predictions, k)
	truthSet := uniqueSet(truth)

	dcg := 0.0
	for i, pred := range preds {
		if _, ok := truthSet[pred]; ok {
			dcg += 1.0 / math.Log2(float64(i+2))
		}
	}

	idealPositions := len(truth)
	if k < idealPositions {
		idealPositions = k
	}
	ideal := 0.0
	for i := 0; i < idealPositions; i++ {
		ideal += 1.0 / math.Log2(float64(i + 2))
	}

	if ideal == 0 {
		return 0.0
	}
	return dcg / ideal
}

// InterRaterAgreement returns Cohen's kappa for two annotation passes over
// the same items. Position i of each slice labels the same item.
//
// Kappa corrects raw agreement for the agreement expected by chance:
//
//	kappa = (observed - expected) / (1 - expected)
//
// Returns ErrRaterLengthMismatch when the slices differ in length, 0 for
// empty input, and 1 when chance agreement is already perfect.
//
// Reference:
// Cohen, J. (1960). "A Coefficient of Agreement for Nominal Scales."
// Educational and Psychological Measurement 20(1).
func InterRaterAgreement(raterA, raterB []string) (float64, error) {
	if len(raterA) != len(raterB) {
		return 0, ErrRaterLengthMismatch
	}

	n := len(raterA)
	if n == 0 {
		return 0.0, nil
	}

	observed := 0
	for i := range raterA {
		if raterA[i] == raterB[i] {
			observed++
		}
	}
	observedRate := float64(observed) / float64(n)

	counts := func(labels []string) map[string]int {
		m := make(map[string]int, len(labels))
		for _, l := range labels {
			m[l]++
		}
		return m
	}
	countsA := counts(raterA)
	countsB := counts(raterB)

	expected := 0.0
	for label, ca := range countsA {
		if cb, ok := countsB[label]; ok {
			expected += (float64(ca) / float64(n)) * (float64(cb) / float64(n))
		}
	}

	if expected == 1 {
		return 1.0, nil
	}
	return (observedRate - expected) / (1 - expected), nil
}

// truncateAtK bounds predictions to the first k entries. Negative k is
// treated as zero.
func truncateAtK(predictions []string, k int) []string {
	if k < 0 {
		k = 0
	}
	if k > len(predictions) {
		k = len(predictions)
	}
	return predictions[:k]
}

// uniqueSet converts a label list to a set.
func uniqueSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}

// intersectionSize counts labels present in both sets.
func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for l := range a {
		if _, ok := b[l]; ok {
			n++
		}
	}
	return n
}
