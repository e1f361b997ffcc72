// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

// Package personalize re-ranks ensemble suggestions from per-user
// interaction history. Selections accumulate into preference records whose
// influence decays exponentially with age, so recent taste outweighs old
// taste without ever fully erasing it. State persists as a single JSON
// document and survives restarts; losing it degrades ranking quality, not
// correctness.
package personalize

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/affectus/internal/emotion"
)

// injectionDamping discounts preferred emojis that the ensemble did not
// propose, so unseen history cannot outrank the whole base list.
const injectionDamping = 0.8

// defaultHistoryDays is the window for emotion history queries.
const defaultHistoryDays = 7

// ScoredPreference is one emoji preference with its decayed score.
type ScoredPreference struct {
	Emoji    string    `json:"emoji"`
	Count    int       `json:"count"`
	Score    float64   `json:"score"`
	LastUsed time.Time `json:"last_used"`
}

// EmojiCount pairs an emoji with its total selection count.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// UserStats summarizes one user's recorded activity.
type UserStats struct {
	UserID            string       `json:"user_id"`
	TotalInteractions int          `json:"total_interactions"`
	EmotionsUsed      []string     `json:"emotions_used"`
	FavoriteEmojis    []EmojiCount `json:"favorite_emojis"`
	ActiveDays        int          `json:"active_days"`
}

// DecayWeight computes the age discount for a preference last used at
// lastUsed, observed at now:
//
//	clamp(exp(-elapsedDays * decayRate), 0.01, 1.0)
//
// Elapsed time counts whole days. The floor keeps old strong preferences
// from ever losing all influence; the ceiling guards against negative
// elapsed time from clock skew. A zero lastUsed (an unparseable stored
// timestamp) yields the mid-range weight 0.5.
func DecayWeight(lastUsed, now time.Time, decayRate float64) float64 {
	if lastUsed.IsZero() {
		return 0.5
	}

	days := int(now.Sub(lastUsed).Hours() / 24)
	w := math.Exp(-float64(days) * decayRate)
	if w < 0.01 {
		return 0.01
	}
	if w > 1.0 {
		return 1.0
	}
	return w
}

// Personalizer re-ranks suggestion lists from decayed preference scores
// and answers per-user statistics queries. All methods are safe for
// concurrent use; state lives in the underlying Store.
type Personalizer struct {
	config *Config
	store  *Store
	clock  Clock
	logger zerolog.Logger
}

// NewPersonalizer creates a personalizer over store. The store's clock is
// reused so recorded timestamps and decay observations agree.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPersonalizer(cfg *Config, store *Store, logger zerolog.Logger) (*Personalizer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("store must not be nil")
	}

	return &Personalizer{
		config: cfg,
		store:  store,
		clock:  store.clock,
		logger: logger.With().Str("component", "personalizer").Logger(),
	}, nil
}

// RecordSelection records one suggested emoji interaction. Only selected
// interactions strengthen the (user, emotion, emoji) preference; shown-but-
// ignored suggestions land in history only.
func (p *Personalizer) RecordSelection(user, emoji string, emo emotion.Emotion, selected bool) error {
	return p.store.RecordInteraction(user, emoji, emo, selected)
}

// Preferences returns the user's decay-scored preferences for one emotion,
// strongest first. Equal scores order by emoji for determinism.
func (p *Personalizer) Preferences(user string, emo emotion.Emotion) ([]ScoredPreference, error) {
	if !emo.IsValid() {
		return nil, fmt.Errorf("%w: %q", emotion.ErrUnknownEmotion, string(emo))
	}

	records := p.store.Preferences(user, emo)
	if len(records) == 0 {
		return nil, nil
	}

	now := p.clock.Now()
	out := make([]ScoredPreference, 0, len(records))
	for emoji, rec := range records {
		out = append(out, ScoredPreference{
			Emoji:    emoji,
			Count:    rec.Count,
			Score:    float64(rec.Count) * DecayWeight(rec.LastUsed, now, p.config.DecayRate),
			LastUsed: rec.LastUsed,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Emoji < out[j].Emoji
	})
	return out, nil
}

// Rank re-ranks base using the user's preferences for the given emotion.
// With a zero personalization weight, or no recorded preferences for
// (user, emotion), the base list passes through unchanged.
//
// Scoring: the candidate at base index i keeps a positional contribution
// of (1-w)*(L-i)/L. Candidates with a matching preference add
// w*(score/maxScore). A preferred emoji absent from base is injected at
// w*(score/maxScore)*injectionDamping. The result is the top len(base)
// candidates by summed score, ties broken by original base order.
func (p *Personalizer) Rank(user string, emo emotion.Emotion, base []string) ([]string, error) {
	if !emo.IsValid() {
		return nil, fmt.Errorf("%w: %q", emotion.ErrUnknownEmotion, string(emo))
	}
	if len(base) == 0 {
		return base, nil
	}

	w := p.config.Weight
	if w <= 0 {
		return base, nil
	}

	records := p.store.Preferences(user, emo)
	if len(records) == 0 {
		return base, nil
	}

	now := p.clock.Now()
	prefScores := make(map[string]float64, len(records))
	maxScore := 0.0
	for emoji, rec := range records {
		score := float64(rec.Count) * DecayWeight(rec.LastUsed, now, p.config.DecayRate)
		prefScores[emoji] = score
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore <= 0 {
		return base, nil
	}

	total := make(map[string]float64, len(base)+len(prefScores))
	for i, e := range base {
		total[e] = (1 - w) * float64(len(base)-i) / float64(len(base))
	}

	injected := make([]string, 0, len(prefScores))
	for emoji, score := range prefScores {
		norm := score / maxScore
		if _, inBase := total[emoji]; inBase {
			total[emoji] += w * norm
		} else {
			total[emoji] = w * norm * injectionDamping
			injected = append(injected, emoji)
		}
	}
	sort.Strings(injected)

	// Candidate order before scoring: base order first, injected after.
	// The stable sort preserves it for equal scores.
	candidates := make([]string, 0, len(total))
	seen := make(map[string]struct{}, len(base))
	for _, e := range base {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		candidates = append(candidates, e)
	}
	candidates = append(candidates, injected...)

	sort.SliceStable(candidates, func(i, j int) bool {
		return total[candidates[i]] > total[candidates[j]]
	})

	if len(candidates) > len(base) {
		candidates = candidates[:len(base)]
	}
	return candidates, nil
}

// Stats summarizes the user's recorded activity. A user with no preference
// records reports zero stats even when raw history events exist: only
// selections make a user known to the ranking path.
func (p *Personalizer) Stats(user string) *UserStats {
	records := p.store.UserRecords(user)
	if len(records) == 0 {
		return &UserStats{UserID: user, EmotionsUsed: []string{}, FavoriteEmojis: []EmojiCount{}}
	}

	counts := make(map[string]int)
	emotions := make(map[string]struct{})
	total := 0
	for _, rec := range records {
		counts[rec.Emoji] += rec.Record.Count
		emotions[rec.Emotion.String()] = struct{}{}
		total += rec.Record.Count
	}
	used := make([]string, 0, len(emotions))
	for emo := range emotions {
		used = append(used, emo)
	}
	sort.Strings(used)

	favorites := make([]EmojiCount, 0, len(counts))
	for emoji, count := range counts {
		favorites = append(favorites, EmojiCount{Emoji: emoji, Count: count})
	}
	sort.Slice(favorites, func(i, j int) bool {
		if favorites[i].Count != favorites[j].Count {
			return favorites[i].Count > favorites[j].Count
		}
		return favorites[i].Emoji < favorites[j].Emoji
	})
	if len(favorites) > 5 {
		favorites = favorites[:5]
	}

	days := make(map[string]struct{})
	for _, ev := range p.store.History(user) {
		days[ev.Timestamp.Format(time.DateOnly)] = struct{}{}
	}

	return &UserStats{
		UserID:            user,
		TotalInteractions: total,
		EmotionsUsed:      used,
		FavoriteEmojis:    favorites,
		ActiveDays:        len(days),
	}
}

// EmotionHistory returns per-day emotion counts from the user's recent
// interaction events, keyed by date then emotion label. Days without
// events are absent. Non-positive days selects the 7-day default.
func (p *Personalizer) EmotionHistory(user string, days int) map[string]map[string]int {
	if days <= 0 {
		days = defaultHistoryDays
	}
	cutoff := p.clock.Now().AddDate(0, 0, -days)

	out := make(map[string]map[string]int)
	for _, ev := range p.store.History(user) {
		if !ev.Timestamp.After(cutoff) {
			continue
		}
		date := ev.Timestamp.Format(time.DateOnly)
		if out[date] == nil {
			out[date] = make(map[string]int)
		}
		out[date][ev.Emotion.String()]++
	}
	return out
}

// Cleanup drops interaction events older than the configured retention
// window. Returns the number of events removed.
func (p *Personalizer) Cleanup() (int, error) {
	return p.store.CleanupOldData(p.config.MaxHistoryDays)
}

// Reset irreversibly deletes all recorded state for the user.
func (p *Personalizer) Reset(user string) error {
	return p.store.ResetUser(user)
}

// Counts reports the number of known users, preference records, and
// interaction events currently held by the store.
func (p *Personalizer) Counts() (users, preferences, events int) {
	return p.store.Counts()
}

// Close flushes the underlying store.
func (p *Personalizer) Close() error {
	return p.store.Close()
}
