// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

// Package emotion defines the closed emotion vocabulary and the curated
// emotion-to-emoji catalog shared by all suggestion components.
package emotion

import (
	"errors"
	"fmt"
	"strings"
)

// Emotion identifies one of the eight supported emotion categories.
type Emotion string

const (
	Joy          Emotion = "joy"
	Sadness      Emotion = "sadness"
	Anger        Emotion = "anger"
	Fear         Emotion = "fear"
	Surprise     Emotion = "surprise"
	Disgust      Emotion = "disgust"
	Trust        Emotion = "trust"
	Anticipation Emotion = "anticipation"
)

// Unknown is used when a sample carries no recognizable emotion label.
// It is not part of the closed vocabulary and never validates.
const Unknown Emotion = "unknown"

// ErrUnknownEmotion is returned when a label is not in the closed vocabulary.
var ErrUnknownEmotion = errors.New("unknown emotion")

// all lists the vocabulary in canonical catalog order.
var all = []Emotion{Joy, Sadness, Anger, Fear, Surprise, Disgust, Trust, Anticipation}

// All returns the emotion vocabulary in canonical order.
func All() []Emotion {
	out := make([]Emotion, len(all))
	copy(out, all)
	return out
}

// String returns the emotion label.
func (e Emotion) String() string {
	return string(e)
}

// IsValid reports whether e is part of the closed vocabulary.
func (e Emotion) IsValid() bool {
	switch e {
	case Joy, Sadness, Anger, Fear, Surprise, Disgust, Trust, Anticipation:
		return true
	default:
		return false
	}
}

// Parse converts a label to an Emotion. Labels are matched case-insensitively
// after trimming surrounding whitespace.
func Parse(label string) (Emotion, error) {
	e := Emotion(strings.ToLower(strings.TrimSpace(label)))
	if !e.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEmotion, label)
	}
	return e, nil
}

// emojiCatalog maps each emotion to its ranked emoji list, strongest
// association first. Order is significant: position feeds directly into
// positional vote weights.
var emojiCatalog = map[Emotion][]string{
	Joy:          {"😊", "🎉", "😄", "🥳", "✨", "🤩", "😁", "🌟"},
	Sadness:      {"😢", "😭", "💔", "😞", "😔", "🥺", "☹️", "😿"},
	Anger:        {"😠", "💢", "😤", "😡", "🤬", "👿", "🔥", "👊"},
	Fear:         {"😨", "😱", "😰", "😟", "😬", "💀", "👻", "💦"},
	Surprise:     {"😮", "😲", "🤯", "😯", "❓", "😳", "🙊", "❗"},
	Disgust:      {"🤢", "🤮", "😖", "😷", "👎", "❌", "🚫", "😒"},
	Trust:        {"🤝", "💪", "👍", "✅", "💯", "👏", "🙏", "👌"},
	Anticipation: {"🤞", "⏰", "🎉", "✨", "🎂", "😊", "🎁", "⏳"},
}

// fallback is served when no provider produces a usable ranking.
var fallback = []string{"🤔", "😊", "👍"}

// Emojis returns the ranked emoji list for e. The returned slice is a copy
// and safe to modify. Unknown emotions return nil.
func Emojis(e Emotion) []string {
	src, ok := emojiCatalog[e]
	if !ok {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// TopEmojis returns at most k emojis for e, strongest association first.
func TopEmojis(e Emotion, k int) []string {
	src := Emojis(e)
	if k < 0 {
		k = 0
	}
	if k > len(src) {
		k = len(src)
	}
	return src[:k]
}

// Fallback returns the neutral default suggestions used when every provider
// comes back empty. The returned slice is a copy and safe to modify.
func Fallback() []string {
	out := make([]string, len(fallback))
	copy(out, fallback)
	return out
}
