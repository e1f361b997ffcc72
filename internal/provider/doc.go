// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

// Package provider implements the suggestion signals registered with the
// ensemble combiner.
//
// Two kinds of provider exist:
//
//   - Keyword: an in-process mapping from an already-detected emotion label
//     to that emotion's curated emoji list. It performs no text analysis and
//     answers the neutral fallback list when no label is supplied.
//
//   - Remote: an HTTP client for an external classifier service (sentiment,
//     semantic). The service receives the input text and returns ranked
//     emojis plus an emotion label and confidence.
//
// Remote providers are wrapped for resilience before registration:
//
//	remote := provider.NewRemote(cfg, logger)
//	breaker := provider.NewBreaker(remote, logger)
//	limited := provider.NewRateLimited(breaker, 50, 10)
//	combiner.Register(limited)
//
// The rate limiter sits outside the breaker so limiter rejections do not
// count toward the breaker's failure ratio.
package provider
