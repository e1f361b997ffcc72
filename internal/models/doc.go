// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

// Package models defines the request and response types shared by the HTTP
// API and the suggestion services.
//
// Types in this package are pure data carriers: they hold validation tags and
// JSON field mappings but no behavior. Domain packages (ensemble, personalize,
// evaluation, monitor) own their internal representations and convert to these
// types at the API boundary.
package models
