// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

// Package monitor logs served predictions to an append-only NDJSON file
// and aggregates them into daily snapshots, weekly reports, and
// day-over-day drift alerts.
//
// Predictions buffer in memory and flush to disk once the buffer fills
// or on explicit Flush/Close. A failed flush is returned to the caller
// rather than swallowed: the prediction log is the primary audit trail.
// Aggregated snapshots are derived data and load leniently, so a
// corrupt metrics document degrades to an empty history, never a
// startup failure.
package monitor

import (
	"bytes"
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

const (
	// inputTextLimit truncates logged input text for privacy.
	inputTextLimit = 50

	// maxLoggedSuggestions caps the suggestion list carried per entry.
	maxLoggedSuggestions = 5

	// recentAlertCount is how many trailing alerts Status reports.
	recentAlertCount = 5
)

// Prediction describes one served suggestion to be logged.
type Prediction struct {
	Text       string
	Emotion    emotion.Emotion
	Intensity  float64
	Emojis     []string
	Confidence float64
	Latency    time.Duration
}

// PredictionEntry is one line of the append-only prediction log. The
// timestamp doubles as the entry's identifier for feedback attachment.
type PredictionEntry struct {
	Timestamp          string   `json:"timestamp"`
	InputText          string   `json:"input_text"`
	PredictedEmotion   string   `json:"predicted_emotion"`
	PredictedIntensity float64  `json:"predicted_intensity"`
	SuggestedEmojis    []string `json:"suggested_emojis"`
	Confidence         float64  `json:"confidence"`
	UserFeedback       string   `json:"user_feedback,omitempty"`
	SelectedEmoji      string   `json:"selected_emoji,omitempty"`
	LatencyMS          float64  `json:"latency_ms"`
}

// snapshotStore is the persisted aggregate document: daily snapshots by
// date, weekly reports by week key, and the append-only alert history.
type snapshotStore struct {
	Daily  map[string]DailySnapshot `json:"daily"`
	Weekly map[string]WeeklyReport  `json:"weekly"`
	Alerts []AlertRecord            `json:"alerts"`
}

// Status reports the monitor's current state for the status endpoint.
type Status struct {
	MonitoringActive  bool               `json:"monitoring_active"`
	LogPath           string             `json:"log_path"`
	MetricsPath       string             `json:"metrics_path"`
	Today             *DailySnapshot     `json:"today,omitempty"`
	EvaluationTargets map[string]float64 `json:"evaluation_targets"`
	RecentAlerts      []AlertRecord      `json:"recent_alerts"`
	BufferSize        int                `json:"buffer_size"`
}

// Monitor buffers prediction log entries and maintains the aggregated
// metrics document. One lock serializes buffer access, log appends, and
// snapshot reads so interleaved writers cannot corrupt the log.
type Monitor struct {
	logPath        string
	metricsPath    string
	bufferSize     int
	driftThreshold float64
	clock          Clock
	logger         zerolog.Logger

	mu     sync.Mutex
	buffer []PredictionEntry
	store  snapshotStore
}

// NewMonitor opens the prediction log and metrics store at the configured
// paths, creating parent directories if needed.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMonitor(cfg *Config, clock Clock, logger zerolog.Logger) (*Monitor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if clock == nil {
		clock = SystemClock()
	}

	for _, path := range []string{cfg.LogPath, cfg.MetricsPath} {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("create monitor directory: %w", err)
			}
		}
	}

	m := &Monitor{
		logPath:        cfg.LogPath,
		metricsPath:    cfg.MetricsPath,
		bufferSize:     cfg.BufferSize,
		driftThreshold: cfg.DriftThreshold,
		clock:          clock,
		logger:         logger.With().Str("component", "monitor").Logger(),
		buffer:         make([]PredictionEntry, 0, cfg.BufferSize),
	}
	m.loadStore()
	return m, nil
}

// loadStore rebuilds the aggregate document from disk. Missing or
// malformed documents start the history empty.
func (m *Monitor) loadStore() {
	m.store = snapshotStore{
		Daily:  make(map[string]DailySnapshot),
		Weekly: make(map[string]WeeklyReport),
		Alerts: []AlertRecord{},
	}

	data, err := os.ReadFile(m.metricsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			m.logger.Warn().Err(err).Str("path", m.metricsPath).Msg("failed to read metrics store, starting empty")
		}
		return
	}

	var loaded snapshotStore
	if err := json.Unmarshal(data, &loaded); err != nil {
		m.logger.Warn().Err(err).Str("path", m.metricsPath).Msg("malformed metrics store, starting empty")
		return
	}
	if loaded.Daily == nil {
		loaded.Daily = make(map[string]DailySnapshot)
	}
	if loaded.Weekly == nil {
		loaded.Weekly = make(map[string]WeeklyReport)
	}
	if loaded.Alerts == nil {
		loaded.Alerts = []AlertRecord{}
	}
	m.store = loaded

	m.logger.Info().
		Int("daily_snapshots", len(loaded.Daily)).
		Int("weekly_reports", len(loaded.Weekly)).
		Int("alerts", len(loaded.Alerts)).
		Msg("metrics store loaded")
}

// LogPrediction buffers one prediction and returns its timestamp, the
// identifier feedback attaches by. Input text longer than 50 characters
// is truncated; at most 5 suggested emojis are kept. A full buffer
// triggers a durable flush whose failure is returned; the entry stays
// buffered for the next attempt.
func (m *Monitor) LogPrediction(p Prediction) (string, error) {
	text := p.Text
	if r := []rune(text); len(r) > inputTextLimit {
		text = string(r[:inputTextLimit]) + "..."
	}
	limit := len(p.Emojis)
	if limit > maxLoggedSuggestions {
		limit = maxLoggedSuggestions
	}
	emojis := append(make([]string, 0, limit), p.Emojis[:limit]...)

	entry := PredictionEntry{
		Timestamp:          m.clock.Now().Format(time.RFC3339Nano),
		InputText:          text,
		PredictedEmotion:   string(p.Emotion),
		PredictedIntensity: p.Intensity,
		SuggestedEmojis:    emojis,
		Confidence:         p.Confidence,
		LatencyMS:          float64(p.Latency.Microseconds()) / 1000.0,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.buffer = append(m.buffer, entry)
	metrics.RecordPredictionLogged(len(m.buffer))

	if len(m.buffer) >= m.bufferSize {
		if err := m.flushLocked(); err != nil {
			return "", err
		}
	}
	return entry.Timestamp, nil
}

// RecordFeedback attaches user feedback to a still-buffered prediction.
// Entries already flushed to the log cannot be amended; the return value
// reports whether the feedback attached.
func (m *Monitor) RecordFeedback(timestamp, feedback, selectedEmoji string) bool {
	metrics.RecordFeedback(feedback == "positive")

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.buffer {
		if m.buffer[i].Timestamp == timestamp {
			m.buffer[i].UserFeedback = feedback
			m.buffer[i].SelectedEmoji = selectedEmoji
			return true
		}
	}
	return false
}

// Flush appends buffered predictions to the log immediately.
func (m *Monitor) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushLocked()
}

// flushLocked appends the buffer to the prediction log and clears it on
// success. A failed append leaves the buffer intact. Callers must hold mu.
func (m *Monitor) flushLocked() error {
	if len(m.buffer) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, entry := range m.buffer {
		line, err := json.Marshal(entry)
		if err != nil {
			err = fmt.Errorf("failed to encode prediction entry: %w", err)
			metrics.RecordPredictionLogFlush(err, len(m.buffer))
			return err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	f, err := os.OpenFile(m.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		err = fmt.Errorf("open prediction log: %w", err)
		metrics.RecordPredictionLogFlush(err, len(m.buffer))
		return err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		err = fmt.Errorf("append prediction log: %w", err)
		metrics.RecordPredictionLogFlush(err, len(m.buffer))
		return err
	}
	if err := f.Close(); err != nil {
		err = fmt.Errorf("close prediction log: %w", err)
		metrics.RecordPredictionLogFlush(err, len(m.buffer))
		return err
	}

	m.buffer = m.buffer[:0]
	metrics.RecordPredictionLogFlush(nil, 0)
	return nil
}

// saveStoreLocked persists the aggregate document. Callers must hold mu.
func (m *Monitor) saveStoreLocked() error {
	data, err := json.MarshalIndent(m.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metrics store: %w", err)
	}
	if err := os.WriteFile(m.metricsPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write metrics store: %w", err)
	}
	return nil
}

// Status reports paths, today's snapshot if one is stored, the target
// table, the most recent alerts, and the current buffer depth.
func (m *Monitor) Status() *Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := &Status{
		MonitoringActive:  true,
		LogPath:           m.logPath,
		MetricsPath:       m.metricsPath,
		EvaluationTargets: Targets(),
		RecentAlerts:      []AlertRecord{},
		BufferSize:        len(m.buffer),
	}

	today := m.clock.Now().Format(time.DateOnly)
	if snap, ok := m.store.Daily[today]; ok {
		st.Today = &snap
	}

	alerts := m.store.Alerts
	if len(alerts) > recentAlertCount {
		alerts = alerts[len(alerts)-recentAlertCount:]
	}
	st.RecentAlerts = append(st.RecentAlerts, alerts...)
	return st
}

// Close flushes buffered predictions and persists the aggregate document.
func (m *Monitor) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.flushLocked(); err != nil {
		return err
	}
	return m.saveStoreLocked()
}
