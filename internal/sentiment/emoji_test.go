package sentiment

import (
	"math"
	"testing"
)

func TestScoreEmojis(t *testing.T) {
	cases := []struct {
		name   string
		emojis []string
		want   float64
	}{
		{"Empty", nil, 0.0},
		{"SinglePositive", []string{"😊"}, 1.0},
		{"SingleNegative", []string{"😞"}, -0.7},
		{"Averaged", []string{"😊", "😞"}, (1.0 - 0.7) / 2},
		{"UnknownIgnored", []string{"🦄", "😊"}, 1.0},
		{"OnlyUnknown", []string{"🦄", "🌵"}, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreEmojis(tc.emojis)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ScoreEmojis(%v) = %v, want %v", tc.emojis, got, tc.want)
			}
		})
	}
}

func TestScoreEmojisBounded(t *testing.T) {
	all := make([]string, 0, len(emojiSentiment))
	for e := range emojiSentiment {
		all = append(all, e)
	}
	score := ScoreEmojis(all)
	if score < -1.0 || score > 1.0 {
		t.Errorf("score %v outside [-1, 1]", score)
	}
}

func TestLabelEmoji(t *testing.T) {
	if LabelEmoji(LabelPositive) != "😊" || LabelEmoji(LabelNegative) != "😞" {
		t.Error("wrong emoji for labels")
	}
	if LabelEmoji("whatever") != "😐" {
		t.Error("unknown label should map to neutral emoji")
	}
}
