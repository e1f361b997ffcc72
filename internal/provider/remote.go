// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/affectus/internal/emotion"
	"github.com/tomtom215/affectus/internal/ensemble"
)

// DefaultRemoteTimeout bounds a single remote provider call.
const DefaultRemoteTimeout = 5 * time.Second

// Ensure Remote implements ensemble.Provider
var _ ensemble.Provider = (*Remote)(nil)

// RemoteConfig configures one HTTP suggestion provider.
type RemoteConfig struct {
	// Name identifies the provider in ensemble weights ("sentiment",
	// "semantic").
	Name string `json:"name"`

	// URL is the provider's suggest endpoint
	// (e.g. http://sentiment:8000/suggest).
	URL string `json:"url"`

	// Timeout bounds a single call. Default: 5s.
	Timeout time.Duration `json:"timeout"`
}

// Validate checks the configuration for correctness
func (c *RemoteConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("provider name must not be empty")
	}
	if c.URL == "" {
		return fmt.Errorf("provider %s: url must not be empty", c.Name)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("provider %s: timeout must not be negative", c.Name)
	}
	return nil
}

// Remote calls an external classifier service over HTTP. The service
// receives the input text and answers ranked emojis with an emotion label
// and confidence.
type Remote struct {
	name       string
	url        string
	httpClient *http.Client
	logger     zerolog.Logger
}

// suggestPayload is the request body sent to the provider service.
type suggestPayload struct {
	Text string `json:"text"`
	TopK int    `json:"top_k"`
}

// suggestReply is the response body returned by the provider service.
type suggestReply struct {
	Emojis          []string `json:"emojis"`
	Emotion         string   `json:"emotion"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// NewRemote creates an HTTP provider client from the given configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRemote(cfg RemoteConfig, logger zerolog.Logger) (*Remote, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultRemoteTimeout
	}

	return &Remote{
		name: cfg.Name,
		url:  strings.TrimSuffix(cfg.URL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With().Str("component", "provider").Str("provider", cfg.Name).Logger(),
	}, nil
}

// Name identifies this provider in ensemble weights.
func (r *Remote) Name() string {
	return r.name
}

// Suggest posts the query text to the provider service and decodes its
// ranked reply. An unknown emotion label in the reply is logged and
// dropped; the emojis are still used.
func (r *Remote) Suggest(ctx context.Context, q ensemble.Query, limit int) (*ensemble.Result, error) {
	payload, err := json.Marshal(suggestPayload{Text: q.Text, TopK: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", r.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", r.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s suggestion request failed: %w", r.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%s returned status %d (failed to read body)", r.name, resp.StatusCode)
		}
		return nil, fmt.Errorf("%s returned status %d: %s", r.name, resp.StatusCode, string(body))
	}

	var reply suggestReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", r.name, err)
	}

	result := &ensemble.Result{
		Emojis:          reply.Emojis,
		Confidence:      reply.Confidence,
		MatchedKeywords: reply.MatchedKeywords,
	}

	if reply.Emotion != "" {
		label, err := emotion.Parse(reply.Emotion)
		if err != nil {
			r.logger.Warn().
				Str("label", reply.Emotion).
				Msg("provider returned unknown emotion label")
		} else {
			result.Emotion = label
		}
	}

	return result, nil
}
