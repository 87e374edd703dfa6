package sentiment

import "math"

// Sentiment labels used throughout the pipeline.
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// Combiner thresholds. Wider than the lexical scorer's ±0.1 on purpose: these
// classify the emoji-blended score, and they are the thresholds callers see.
const (
	combinedPositiveThreshold = 0.2
	combinedNegativeThreshold = -0.2

	emojiWeightPerEmoji = 0.1
	emojiWeightCap      = 0.5
)

// Combine blends a text polarity with an emoji polarity. The emoji weight
// grows with the number of emoji in the comment, capped at half the blend.
// Returns the final label and the combined score.
func Combine(textScore, emojiScore float64, emojiCount int) (string, float64) {
	weight := math.Min(emojiWeightCap, float64(emojiCount)*emojiWeightPerEmoji)
	combined := (1-weight)*textScore + weight*emojiScore

	switch {
	case combined > combinedPositiveThreshold:
		return LabelPositive, combined
	case combined < combinedNegativeThreshold:
		return LabelNegative, combined
	default:
		return LabelNeutral, combined
	}
}
