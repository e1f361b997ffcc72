// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package provider

import (
	"context"

	"github.com/tomtom215/affectus/internal/emotion"
	"github.com/tomtom215/affectus/internal/ensemble"
)

// Ensure Keyword implements ensemble.Provider
var _ ensemble.Provider = (*Keyword)(nil)

// Keyword maps an already-detected emotion label to that emotion's curated
// emoji list. It never inspects the input text: classification happens in
// the remote providers or upstream of this service, and Keyword only turns
// the resulting label into emojis. With no label it answers the neutral
// fallback list, which keeps the ensemble productive when every classifier
// is down.
type Keyword struct{}

// NewKeyword creates the label-mapping provider. It has no configuration
// and cannot fail.
func NewKeyword() *Keyword {
	return &Keyword{}
}

// Name identifies this provider in ensemble weights.
func (k *Keyword) Name() string {
	return "keyword"
}

// Suggest maps q.Emotion to its emoji list, or returns the neutral fallback
// when no valid label was supplied. A supplied label is reported back with
// full confidence since the caller asserted it.
func (k *Keyword) Suggest(_ context.Context, q ensemble.Query, limit int) (*ensemble.Result, error) {
	if q.Emotion.IsValid() {
		return &ensemble.Result{
			Emojis:          emotion.TopEmojis(q.Emotion, limit),
			Emotion:         q.Emotion,
			Confidence:      1.0,
			MatchedKeywords: []string{q.Emotion.String()},
		}, nil
	}

	fallback := emotion.Fallback()
	if limit >= 0 && limit < len(fallback) {
		fallback = fallback[:limit]
	}
	return &ensemble.Result{Emojis: fallback}, nil
}
