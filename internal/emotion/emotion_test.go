// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

package emotion

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Emotion
		wantErr bool
	}{
		{"joy", "joy", Joy, false},
		{"uppercase", "JOY", Joy, false},
		{"mixed case", "Sadness", Sadness, false},
		{"surrounding whitespace", "  anger  ", Anger, false},
		{"anticipation", "anticipation", Anticipation, false},
		{"unknown label", "melancholy", "", true},
		{"unknown sentinel rejected", "unknown", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrUnknownEmotion) {
					t.Errorf("Parse(%q) error = %v, want ErrUnknownEmotion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	for _, e := range All() {
		if !e.IsValid() {
			t.Errorf("%s should be valid", e)
		}
	}

	if Unknown.IsValid() {
		t.Error("unknown sentinel must not validate")
	}
	if Emotion("happy").IsValid() {
		t.Error("labels outside the vocabulary must not validate")
	}
}

func TestAllCoversCatalog(t *testing.T) {
	t.Parallel()

	emotions := All()
	if len(emotions) != 8 {
		t.Fatalf("expected 8 emotions, got %d", len(emotions))
	}

	seen := make(map[Emotion]bool, len(emotions))
	for _, e := range emotions {
		if seen[e] {
			t.Errorf("duplicate emotion %s in All()", e)
		}
		seen[e] = true

		if len(Emojis(e)) == 0 {
			t.Errorf("emotion %s has no emoji entries", e)
		}
	}
}

func TestEmojisReturnsCopy(t *testing.T) {
	t.Parallel()

	first := Emojis(Joy)
	first[0] = "mutated"

	if got := Emojis(Joy)[0]; got == "mutated" {
		t.Error("Emojis must return a defensive copy")
	}
}

func TestEmojisUnknownEmotion(t *testing.T) {
	t.Parallel()

	if got := Emojis(Emotion("nope")); got != nil {
		t.Errorf("Emojis for unknown emotion = %v, want nil", got)
	}
}

func TestTopEmojis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		emotion Emotion
		k       int
		wantLen int
	}{
		{"top three", Joy, 3, 3},
		{"k beyond catalog", Joy, 50, 8},
		{"zero", Joy, 0, 0},
		{"negative clamps to zero", Joy, -1, 0},
		{"unknown emotion", Emotion("nope"), 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopEmojis(tt.emotion, tt.k)
			if len(got) != tt.wantLen {
				t.Errorf("TopEmojis(%s, %d) returned %d emojis, want %d",
					tt.emotion, tt.k, len(got), tt.wantLen)
			}
		})
	}
}

func TestTopEmojisOrder(t *testing.T) {
	t.Parallel()

	got := TopEmojis(Joy, 2)
	want := []string{"😊", "🎉"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopEmojis(joy, 2)[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestFallback(t *testing.T) {
	t.Parallel()

	got := Fallback()
	want := []string{"🤔", "😊", "👍"}

	if len(got) != len(want) {
		t.Fatalf("Fallback returned %d emojis, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fallback[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	got[0] = "mutated"
	if Fallback()[0] == "mutated" {
		t.Error("Fallback must return a defensive copy")
	}
}
