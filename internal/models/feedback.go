// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package models

// FeedbackRequest records what a user did with a suggestion. Selections with
// a user ID feed the personalization profile; a prediction ID attaches the
// outcome to the logged prediction. At least one of the two must be present.
//
// Fields:
//   - UserID: User the selection belongs to; enables personalization updates
//   - Emoji: The emoji shown or chosen
//   - Emotion: Emotion context the suggestion was made under; required
//     together with UserID
//   - Selected: Whether the user actually picked the emoji
//   - PredictionID: Monitor timestamp linking back to the logged prediction
type FeedbackRequest struct {
	UserID       string `json:"user_id,omitempty" validate:"required_without=PredictionID,omitempty,max=128"`
	Emoji        string `json:"emoji" validate:"required,max=16"`
	Emotion      string `json:"emotion,omitempty" validate:"required_with=UserID,omitempty,emotion"`
	Selected     bool   `json:"selected"`
	PredictionID string `json:"prediction_id,omitempty" validate:"required_without=UserID,omitempty,max=64"`
}

// FeedbackResponse acknowledges a recorded selection.
type FeedbackResponse struct {
	Recorded bool   `json:"recorded"`
	UserID   string `json:"user_id"`
}

// ResetResponse acknowledges deletion of a user's personalization data.
type ResetResponse struct {
	UserID string `json:"user_id"`
	Reset  bool   `json:"reset"`
}
