// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package monitor

import (
	"fmt"
	"time"
)

// reportWindowDays is the span a weekly report covers.
const reportWindowDays = 7

// targets is the fixed quality-target table weekly aggregates are judged
// against: minimum rates for classification, satisfaction, and ranking
// quality, maximum values for intensity error and mean inference seconds.
var targets = map[string]float64{
	"emotion_accuracy":  0.70,
	"intensity_mse":     0.5,
	"user_satisfaction": 0.75,
	"inference_time":    0.3,
	"precision_at_3":    0.62,
	"recall_at_5":       0.75,
	"mrr":               0.65,
	"ndcg_at_5":         0.70,
}

// Targets returns a copy of the evaluation target table.
func Targets() map[string]float64 {
	out := make(map[string]float64, len(targets))
	for name, value := range targets {
		out[name] = value
	}
	return out
}

// WeeklySummary aggregates volume and means over the report window. Mean
// fields average only days with recorded volume.
type WeeklySummary struct {
	TotalPredictions    int     `json:"total_predictions"`
	AvgDailyPredictions float64 `json:"avg_daily_predictions"`
	AvgConfidence       float64 `json:"avg_confidence"`
	AvgLatencyMS        float64 `json:"avg_latency_ms"`
	AvgSatisfaction     float64 `json:"avg_satisfaction"`
}

// TargetAlert flags one weekly aggregate that missed its target.
type TargetAlert struct {
	Metric string  `json:"metric"`
	Target float64 `json:"target"`
	Actual float64 `json:"actual"`
	Gap    float64 `json:"gap,omitempty"`
	Issue  string  `json:"issue,omitempty"`
}

// WeeklyReport covers the trailing seven days of prediction activity.
// Summary is nil when the window recorded no predictions.
type WeeklyReport struct {
	Period          string          `json:"period"`
	GeneratedAt     string          `json:"generated_at"`
	Summary         *WeeklySummary  `json:"summary,omitempty"`
	DailyBreakdown  []DailySnapshot `json:"daily_breakdown"`
	Alerts          []TargetAlert   `json:"alerts"`
	Recommendations []string        `json:"recommendations"`
}

// GenerateWeeklyReport recomputes daily snapshots over the trailing
// seven days, aggregates the days with recorded volume, and checks the
// aggregate against the target table: satisfaction alerts when below
// target, mean inference time when above. The report is stored under a
// year-and-week key, replacing any earlier report for the same week.
func (m *Monitor) GenerateWeeklyReport() (*WeeklyReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	today := m.clock.Now()
	weekStart := today.AddDate(0, 0, -reportWindowDays)

	report := &WeeklyReport{
		Period:          weekStart.Format(time.DateOnly) + " to " + today.Format(time.DateOnly),
		GeneratedAt:     today.Format(time.RFC3339Nano),
		DailyBreakdown:  make([]DailySnapshot, 0, reportWindowDays),
		Alerts:          []TargetAlert{},
		Recommendations: []string{},
	}

	total := 0
	for i := 0; i < reportWindowDays; i++ {
		date := weekStart.AddDate(0, 0, i+1).Format(time.DateOnly)
		snap, err := m.computeDailyLocked(date)
		if err != nil {
			return nil, err
		}
		report.DailyBreakdown = append(report.DailyBreakdown, *snap)
		total += snap.TotalPredictions
	}

	if total > 0 {
		summary := &WeeklySummary{
			TotalPredictions:    total,
			AvgDailyPredictions: float64(total) / reportWindowDays,
			AvgConfidence: meanNonzero(report.DailyBreakdown, func(s DailySnapshot) float64 {
				return s.AvgConfidence
			}),
			AvgLatencyMS: meanNonzero(report.DailyBreakdown, func(s DailySnapshot) float64 {
				return s.AvgLatencyMS
			}),
			AvgSatisfaction: meanNonzero(report.DailyBreakdown, func(s DailySnapshot) float64 {
				return s.PositiveFeedbackRate
			}),
		}
		report.Summary = summary

		if summary.AvgSatisfaction < targets["user_satisfaction"] {
			report.Alerts = append(report.Alerts, TargetAlert{
				Metric: "user_satisfaction",
				Target: targets["user_satisfaction"],
				Actual: summary.AvgSatisfaction,
				Gap:    targets["user_satisfaction"] - summary.AvgSatisfaction,
			})
		}
		if latencySeconds := summary.AvgLatencyMS / 1000; latencySeconds > targets["inference_time"] {
			report.Alerts = append(report.Alerts, TargetAlert{
				Metric: "inference_time",
				Target: targets["inference_time"],
				Actual: latencySeconds,
				Issue:  "latency_exceeded",
			})
		}

		if len(report.Alerts) > 0 {
			report.Recommendations = append(report.Recommendations,
				"Review model performance - some metrics below target")
		}
		if total < 100 {
			report.Recommendations = append(report.Recommendations,
				"Consider collecting more user data for better analysis")
		}
	}

	m.store.Weekly[weekKey(today)] = *report
	if err := m.saveStoreLocked(); err != nil {
		return nil, err
	}

	m.logger.Info().
		Str("period", report.Period).
		Int("predictions", total).
		Int("alerts", len(report.Alerts)).
		Msg("weekly report generated")
	return report, nil
}

// meanNonzero averages the selected field over days with a nonzero value.
func meanNonzero(days []DailySnapshot, field func(DailySnapshot) float64) float64 {
	sum, n := 0.0, 0
	for _, day := range days {
		if v := field(day); v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// weekKey labels a report by year and week number, weeks starting on
// Monday; days before the year's first Monday fall in week zero.
func weekKey(t time.Time) string {
	mondayIndex := (int(t.Weekday()) + 6) % 7
	week := (t.YearDay() - 1 + 7 - mondayIndex) / 7
	return fmt.Sprintf("week_%d_%02d", t.Year(), week)
}
