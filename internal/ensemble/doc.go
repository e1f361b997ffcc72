// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

// Package ensemble combines emoji suggestions from multiple providers
// into a single ranked list.
//
// # Architecture
//
// The combiner fans a request out to every registered provider in
// parallel, collects the per-provider candidate lists, and merges them
// with one of two strategies:
//
//   - Voting: each candidate scores one point per occurrence across all
//     provider lists. Rank position within a list is ignored.
//   - Weighted: each candidate scores providerWeight * (L-i)/L, where i
//     is its zero-based rank in a provider list of length L. Earlier
//     positions and heavier providers contribute more.
//
// Both strategies break score ties by first appearance, scanning
// provider lists in registration order. A provider that returns an
// error or an empty list is skipped for that request; the remaining
// providers carry the result.
//
// # Usage
//
//	cfg := ensemble.DefaultConfig()
//	comb, err := ensemble.NewCombiner(cfg, logger)
//
//	// Register providers
//	comb.Register(provider.NewKeyword(nil, logger))
//	comb.Register(sentimentProvider)
//
//	suggestions, err := comb.Suggest(ctx, "congrats on the launch", 3, ensemble.MethodWeighted)
//
// # Thread Safety
//
// The combiner is safe for concurrent use. Provider registration is
// expected at startup but may happen at any time; suggestion requests
// snapshot the provider list under a read lock.
package ensemble
