package sentiment

import (
	"math"
	"testing"
)

func TestScoreLabels(t *testing.T) {
	a := New()

	tests := []struct {
		name      string
		text      string
		wantLabel string
	}{
		{"empty", "", LabelNeutral},
		{"whitespace only", "   \t\n", LabelNeutral},
		{"clearly positive", "This product is amazing, excellent and wonderful. I love it!", LabelPositive},
		{"clearly negative", "This is terrible, awful and horrible. The worst product ever, I hate it.", LabelNegative},
		{"no sentiment words", "The quarterly report lists twelve figures across three regions.", LabelNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Score(tt.text)
			if got.Label != tt.wantLabel {
				t.Errorf("Score(%q).Label = %q (score %v), want %q", tt.text, got.Label, got.Score, tt.wantLabel)
			}
		})
	}
}

func TestScoreBounds(t *testing.T) {
	a := New()

	texts := []string{
		"",
		"good good good good good good good good good good good good good",
		"bad bad bad bad bad bad bad bad bad bad bad bad bad bad bad bad",
		"a perfectly ordinary sentence about nothing in particular",
	}

	for _, text := range texts {
		got := a.Score(text)
		if got.Score < -1 || got.Score > 1 {
			t.Errorf("Score(%q).Score = %v, want within [-1, 1]", text, got.Score)
		}
		if want := math.Abs(got.Score); math.Abs(got.Confidence-round3(want)) > 1e-9 {
			t.Errorf("Score(%q).Confidence = %v, want %v", text, got.Confidence, round3(want))
		}
	}
}

func TestScoreCutoffsAreStrict(t *testing.T) {
	// A combined score of exactly the cutoff must stay neutral.
	tests := []struct {
		score float64
		want  string
	}{
		{0.1, LabelNeutral},
		{-0.1, LabelNeutral},
		{0.101, LabelPositive},
		{-0.101, LabelNegative},
		{0, LabelNeutral},
	}

	for _, tt := range tests {
		label := LabelNeutral
		switch {
		case tt.score > positiveCutoff:
			label = LabelPositive
		case tt.score < negativeCutoff:
			label = LabelNegative
		}
		if label != tt.want {
			t.Errorf("label for score %v = %q, want %q", tt.score, label, tt.want)
		}
	}
}

func TestScoreRounding(t *testing.T) {
	a := New()

	got := a.Score("I love this excellent product")
	if got.Score != round3(got.Score) {
		t.Errorf("Score = %v, want rounded to 3 decimals", got.Score)
	}
}

func TestNormalizeLexiconScore(t *testing.T) {
	tests := []struct {
		sum  int
		want float64
	}{
		{0, 0},
		{5, 0.5},
		{-5, -0.5},
		{10, 1},
		{-10, -1},
		{25, 1},
		{-25, -1},
	}

	for _, tt := range tests {
		if got := normalizeLexiconScore(tt.sum); got != tt.want {
			t.Errorf("normalizeLexiconScore(%d) = %v, want %v", tt.sum, got, tt.want)
		}
	}
}
