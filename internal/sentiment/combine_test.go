package sentiment

import (
	"math"
	"testing"
)

func TestCombineNoEmoji(t *testing.T) {
	label, combined := Combine(0.8, -1.0, 0)
	if label != LabelPositive {
		t.Errorf("label = %s, want positive (emoji score must carry no weight)", label)
	}
	if math.Abs(combined-0.8) > 1e-9 {
		t.Errorf("combined = %v, want 0.8", combined)
	}
}

func TestCombineWeightGrowsWithCount(t *testing.T) {
	// One emoji: weight 0.1.
	_, one := Combine(0.0, 1.0, 1)
	if math.Abs(one-0.1) > 1e-9 {
		t.Errorf("one emoji: combined = %v, want 0.1", one)
	}

	// Three emoji: weight 0.3.
	_, three := Combine(0.0, 1.0, 3)
	if math.Abs(three-0.3) > 1e-9 {
		t.Errorf("three emoji: combined = %v, want 0.3", three)
	}
}

func TestCombineWeightCapped(t *testing.T) {
	_, combined := Combine(0.0, 1.0, 50)
	if math.Abs(combined-0.5) > 1e-9 {
		t.Errorf("combined = %v, want weight capped at 0.5", combined)
	}
}

func TestCombineThresholds(t *testing.T) {
	cases := []struct {
		textScore float64
		want      string
	}{
		{0.25, LabelPositive},
		{0.2, LabelNeutral}, // boundary is exclusive
		{0.0, LabelNeutral},
		{-0.2, LabelNeutral},
		{-0.25, LabelNegative},
	}

	for _, tc := range cases {
		label, _ := Combine(tc.textScore, 0.0, 0)
		if label != tc.want {
			t.Errorf("Combine(%v, 0, 0) label = %s, want %s", tc.textScore, label, tc.want)
		}
	}
}

func TestCombineEmojiFlipsLabel(t *testing.T) {
	// Mildly positive text overwhelmed by five angry emoji.
	label, _ := Combine(0.15, -1.0, 5)
	if label != LabelNegative {
		t.Errorf("label = %s, want negative", label)
	}
}
