// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package monitor

import (
	"math"
	"time"

	"github.com/tomtom215/affectus/internal/metrics"
)

// AlertRecord is an append-only drift notice comparing one day's
// aggregates against the previous day's.
type AlertRecord struct {
	Type      string  `json:"type"`
	Direction string  `json:"direction"`
	ChangePct float64 `json:"change_pct"`
	Date      string  `json:"date"`
}

// CheckDrift compares today's cached snapshot against yesterday's. Mean
// confidence alerts when the relative change exceeds the threshold in
// either direction; mean latency alerts only on slowdown. No alerts are
// produced when either day has no stored snapshot. Raised alerts append
// to the persisted alert history.
func (m *Monitor) CheckDrift() ([]AlertRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	today := m.clock.Now()
	currentDate := today.Format(time.DateOnly)
	previousDate := today.AddDate(0, 0, -1).Format(time.DateOnly)

	current, okCurrent := m.store.Daily[currentDate]
	previous, okPrevious := m.store.Daily[previousDate]
	if !okCurrent || !okPrevious {
		return nil, nil
	}

	var alerts []AlertRecord
	if previous.AvgConfidence > 0 {
		change := (current.AvgConfidence - previous.AvgConfidence) / previous.AvgConfidence
		if math.Abs(change) > m.driftThreshold {
			direction := "up"
			if change < 0 {
				direction = "down"
			}
			alerts = append(alerts, AlertRecord{
				Type:      "confidence_drift",
				Direction: direction,
				ChangePct: change * 100,
				Date:      currentDate,
			})
		}
	}
	if previous.AvgLatencyMS > 0 {
		change := (current.AvgLatencyMS - previous.AvgLatencyMS) / previous.AvgLatencyMS
		if change > m.driftThreshold {
			alerts = append(alerts, AlertRecord{
				Type:      "latency_drift",
				Direction: "up",
				ChangePct: change * 100,
				Date:      currentDate,
			})
		}
	}

	if len(alerts) == 0 {
		return nil, nil
	}

	for _, alert := range alerts {
		metrics.RecordDriftAlert(alert.Type, alert.Direction)
		m.logger.Warn().
			Str("type", alert.Type).
			Str("direction", alert.Direction).
			Float64("change_pct", alert.ChangePct).
			Str("date", alert.Date).
			Msg("drift detected")
	}

	m.store.Alerts = append(m.store.Alerts, alerts...)
	if err := m.saveStoreLocked(); err != nil {
		return nil, err
	}
	return alerts, nil
}
