// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package monitor

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// topEmojiRanks is how many suggestion slots per entry count toward the
// daily top-emoji tally.
const topEmojiRanks = 3

// topEmojiCount is how many emojis a daily snapshot keeps.
const topEmojiCount = 10

// DailySnapshot aggregates one day of prediction log entries. Snapshots
// are derived data, recomputable at any time from the log.
type DailySnapshot struct {
	Date                 string         `json:"date"`
	TotalPredictions     int            `json:"total_predictions"`
	AvgConfidence        float64        `json:"avg_confidence"`
	AvgLatencyMS         float64        `json:"avg_latency_ms"`
	PositiveFeedbackRate float64        `json:"positive_feedback_rate"`
	EmotionDistribution  map[string]int `json:"emotion_distribution"`
	TopEmojis            []string       `json:"top_emojis"`
}

// ComputeDailyMetrics aggregates the prediction log for one date
// (YYYY-MM-DD; empty selects today). The buffer is flushed first so the
// log is complete. A day with no entries yields a zero snapshot that is
// not stored; otherwise the result overwrites the stored snapshot for
// that date, making recomputation idempotent. The positive feedback rate
// counts only entries that received feedback.
func (m *Monitor) ComputeDailyMetrics(date string) (*DailySnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.computeDailyLocked(date)
}

// computeDailyLocked implements ComputeDailyMetrics. Callers must hold mu.
func (m *Monitor) computeDailyLocked(date string) (*DailySnapshot, error) {
	if date == "" {
		date = m.clock.Now().Format(time.DateOnly)
	}

	if err := m.flushLocked(); err != nil {
		return nil, err
	}

	entries, err := m.readDayEntries(date)
	if err != nil {
		return nil, err
	}

	snap := &DailySnapshot{
		Date:                date,
		EmotionDistribution: map[string]int{},
		TopEmojis:           []string{},
	}
	if len(entries) == 0 {
		return snap, nil
	}

	var confidenceSum, latencySum float64
	feedbackTotal, feedbackPositive := 0, 0
	emojiCounts := make(map[string]int)

	for _, e := range entries {
		confidenceSum += e.Confidence
		latencySum += e.LatencyMS
		snap.EmotionDistribution[e.PredictedEmotion]++

		top := e.SuggestedEmojis
		if len(top) > topEmojiRanks {
			top = top[:topEmojiRanks]
		}
		for _, emoji := range top {
			emojiCounts[emoji]++
		}

		if e.UserFeedback != "" {
			feedbackTotal++
			if e.UserFeedback == "positive" {
				feedbackPositive++
			}
		}
	}

	snap.TotalPredictions = len(entries)
	snap.AvgConfidence = confidenceSum / float64(len(entries))
	snap.AvgLatencyMS = latencySum / float64(len(entries))
	if feedbackTotal > 0 {
		snap.PositiveFeedbackRate = float64(feedbackPositive) / float64(feedbackTotal)
	}
	snap.TopEmojis = topEmojis(emojiCounts, topEmojiCount)

	m.store.Daily[date] = *snap
	if err := m.saveStoreLocked(); err != nil {
		return nil, err
	}
	return snap, nil
}

// readDayEntries scans the prediction log for entries whose timestamp
// starts with date. Malformed lines are skipped and counted.
func (m *Monitor) readDayEntries(date string) ([]PredictionEntry, error) {
	f, err := os.Open(m.logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open prediction log: %w", err)
	}
	defer func() { _ = f.Close() }()

	var entries []PredictionEntry
	skipped := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry PredictionEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			skipped++
			continue
		}
		if strings.HasPrefix(entry.Timestamp, date) {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read prediction log: %w", err)
	}
	if skipped > 0 {
		m.logger.Warn().Int("lines", skipped).Msg("skipped malformed prediction log lines")
	}
	return entries, nil
}

// topEmojis returns the n most frequent emojis, most frequent first.
// Equal counts order by emoji for determinism.
func topEmojis(counts map[string]int, n int) []string {
	type rankedEmoji struct {
		emoji string
		count int
	}
	ranked := make([]rankedEmoji, 0, len(counts))
	for emoji, count := range counts {
		ranked = append(ranked, rankedEmoji{emoji: emoji, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].emoji < ranked[j].emoji
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.emoji
	}
	return out
}
