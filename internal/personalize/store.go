// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package personalize

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/affectus/internal/emotion"
	"github.com/tomtom215/affectus/internal/metrics"
)

// PreferenceRecord tracks how often a user selected one emoji for one
// emotion. A zero LastUsed marks a stored timestamp that failed to parse;
// decay treats it as mid-range rather than dropping the record.
type PreferenceRecord struct {
	Count    int
	LastUsed time.Time
}

// Interaction is one append-only usage event. Events are never mutated or
// deleted individually, only retention-pruned in bulk by age.
type Interaction struct {
	Emoji     string
	Emotion   emotion.Emotion
	Timestamp time.Time
	Selected  bool
}

// UserRecord pairs one preference cell with its record.
type UserRecord struct {
	Emotion emotion.Emotion
	Emoji   string
	Record  PreferenceRecord
}

// prefKey identifies one cell of the flat preference table.
type prefKey struct {
	user    string
	emotion emotion.Emotion
	emoji   string
}

// Persisted document layout. Preferences nest user -> emotion -> emoji on
// the wire; in memory they live in a flat table keyed by the compound
// tuple. Timestamps persist as RFC 3339 strings and are parsed leniently
// per record so one corrupt value cannot poison the whole load.
type storedState struct {
	Preferences map[string]map[string]map[string]storedPreference `json:"preferences"`
	History     map[string][]storedInteraction                    `json:"history"`
	LastUpdated string                                            `json:"last_updated"`
}

type storedPreference struct {
	Count    int    `json:"count"`
	LastUsed string `json:"last_used"`
}

type storedInteraction struct {
	Emoji     string `json:"emoji"`
	Emotion   string `json:"emotion"`
	Timestamp string `json:"timestamp"`
	Selected  bool   `json:"selected"`
}

// Store holds per-user preference records and interaction history,
// persisted as a single JSON document.
//
// One lock serializes all access. Contention stays low: writes are a map
// upsert plus a slice append, and reads copy small per-user snapshots.
type Store struct {
	path       string
	flushEvery int
	clock      Clock
	logger     zerolog.Logger

	mu          sync.RWMutex
	preferences map[prefKey]PreferenceRecord
	history     map[string][]Interaction
}

// NewStore opens the preference store at cfg.StorePath, creating the
// parent directory if needed and rebuilding state from the last flush.
// A missing or malformed document starts the store empty: preferences are
// a re-derivable cache, so availability wins over durability on load.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStore(cfg *Config, clock Clock, logger zerolog.Logger) (*Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if clock == nil {
		clock = SystemClock()
	}

	if dir := filepath.Dir(cfg.StorePath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	s := &Store{
		path:        cfg.StorePath,
		flushEvery:  cfg.FlushEvery,
		clock:       clock,
		logger:      logger.With().Str("component", "preference-store").Logger(),
		preferences: make(map[prefKey]PreferenceRecord),
		history:     make(map[string][]Interaction),
	}
	s.load()
	return s, nil
}

// load rebuilds in-memory state from the persisted document. Individual
// records with unparseable fields are defaulted or skipped, never aborting
// the whole load.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("failed to read preference store, starting empty")
		}
		return
	}

	var state storedState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("malformed preference store, starting empty")
		return
	}

	for user, emotions := range state.Preferences {
		for label, emojis := range emotions {
			for emoji, rec := range emojis {
				key := prefKey{user: user, emotion: emotion.Emotion(label), emoji: emoji}
				s.preferences[key] = PreferenceRecord{
					Count:    rec.Count,
					LastUsed: parseStoredTime(rec.LastUsed),
				}
			}
		}
	}

	skipped := 0
	for user, events := range state.History {
		list := make([]Interaction, 0, len(events))
		for _, ev := range events {
			ts := parseStoredTime(ev.Timestamp)
			if ts.IsZero() {
				skipped++
				continue
			}
			list = append(list, Interaction{
				Emoji:     ev.Emoji,
				Emotion:   emotion.Emotion(ev.Emotion),
				Timestamp: ts,
				Selected:  ev.Selected,
			})
		}
		s.history[user] = list
	}
	if skipped > 0 {
		s.logger.Warn().Int("events", skipped).Msg("skipped history events with unparseable timestamps")
	}

	s.logger.Info().
		Int("preferences", len(s.preferences)).
		Int("users", len(s.history)).
		Msg("preference store loaded")
}

// parseStoredTime parses a persisted RFC 3339 timestamp. Unparseable
// values yield the zero time.
func parseStoredTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// RecordInteraction appends an interaction event and, when the emoji was
// actually selected, upserts the (user, emotion, emoji) preference record.
// An invalid emotion is rejected before any state changes. The store
// flushes after every flushEvery events recorded for a user; a failed
// flush is logged and counted, not returned, since the next flush carries
// the full state again.
func (s *Store) RecordInteraction(user, emoji string, emo emotion.Emotion, selected bool) error {
	if !emo.IsValid() {
		return fmt.Errorf("%w: %q", emotion.ErrUnknownEmotion, string(emo))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.history[user] = append(s.history[user], Interaction{
		Emoji:     emoji,
		Emotion:   emo,
		Timestamp: now,
		Selected:  selected,
	})

	if selected {
		key := prefKey{user: user, emotion: emo, emoji: emoji}
		rec := s.preferences[key]
		rec.Count++
		rec.LastUsed = now
		s.preferences[key] = rec
	}

	if len(s.history[user])%s.flushEvery == 0 {
		if err := s.saveLocked(); err != nil {
			s.logger.Warn().Err(err).Msg("preference flush failed")
		}
	}
	return nil
}

// Preferences returns a copy of the user's preference records for one
// emotion, keyed by emoji.
func (s *Store) Preferences(user string, emo emotion.Emotion) map[string]PreferenceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]PreferenceRecord)
	for key, rec := range s.preferences {
		if key.user == user && key.emotion == emo {
			out[key.emoji] = rec
		}
	}
	return out
}

// UserRecords returns a copy of every preference record for the user, in
// no particular order.
func (s *Store) UserRecords(user string) []UserRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []UserRecord
	for key, rec := range s.preferences {
		if key.user == user {
			out = append(out, UserRecord{Emotion: key.emotion, Emoji: key.emoji, Record: rec})
		}
	}
	return out
}

// History returns a copy of the user's interaction events, oldest first.
func (s *Store) History(user string) []Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.history[user]
	out := make([]Interaction, len(events))
	copy(out, events)
	return out
}

// Counts reports store cardinality: distinct users, preference records,
// and interaction events.
func (s *Store) Counts() (users, preferences, events int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for key := range s.preferences {
		seen[key.user] = struct{}{}
	}
	for user, list := range s.history {
		seen[user] = struct{}{}
		events += len(list)
	}
	return len(seen), len(s.preferences), events
}

// ResetUser irreversibly deletes the user's preference records and
// interaction history, then persists.
func (s *Store) ResetUser(user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.preferences {
		if key.user == user {
			delete(s.preferences, key)
		}
	}
	delete(s.history, user)

	return s.saveLocked()
}

// CleanupOldData drops interaction events older than maxDays, then
// persists. Preference records are kept: decay already discounts them and
// the score floor keeps old favorites from vanishing. Returns the number
// of events removed.
func (s *Store) CleanupOldData(maxDays int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.clock.Now().AddDate(0, 0, -maxDays)
	removed := 0
	for user, events := range s.history {
		kept := events[:0]
		for _, ev := range events {
			if ev.Timestamp.After(cutoff) {
				kept = append(kept, ev)
			} else {
				removed++
			}
		}
		s.history[user] = kept
	}

	return removed, s.saveLocked()
}

// Save persists the current state immediately.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// Close flushes the store a final time.
func (s *Store) Close() error {
	return s.Save()
}

// saveLocked persists the full store state. Callers must hold mu.
func (s *Store) saveLocked() error {
	state := storedState{
		Preferences: make(map[string]map[string]map[string]storedPreference),
		History:     make(map[string][]storedInteraction, len(s.history)),
		LastUpdated: s.clock.Now().Format(time.RFC3339Nano),
	}

	for key, rec := range s.preferences {
		emotions := state.Preferences[key.user]
		if emotions == nil {
			emotions = make(map[string]map[string]storedPreference)
			state.Preferences[key.user] = emotions
		}
		emojis := emotions[key.emotion.String()]
		if emojis == nil {
			emojis = make(map[string]storedPreference)
			emotions[key.emotion.String()] = emojis
		}
		emojis[key.emoji] = storedPreference{
			Count:    rec.Count,
			LastUsed: rec.LastUsed.Format(time.RFC3339Nano),
		}
	}

	for user, events := range s.history {
		list := make([]storedInteraction, 0, len(events))
		for _, ev := range events {
			list = append(list, storedInteraction{
				Emoji:     ev.Emoji,
				Emotion:   ev.Emotion.String(),
				Timestamp: ev.Timestamp.Format(time.RFC3339Nano),
				Selected:  ev.Selected,
			})
		}
		state.History[user] = list
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		err = fmt.Errorf("failed to encode preference store: %w", err)
		metrics.RecordPreferenceFlush(err)
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		err = fmt.Errorf("failed to write preference store: %w", err)
		metrics.RecordPreferenceFlush(err)
		return err
	}

	metrics.RecordPreferenceFlush(nil)
	return nil
}
