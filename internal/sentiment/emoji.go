package sentiment

// emojiSentiment assigns a curated polarity weight to common reaction emoji.
// Emoji outside this table carry no signal and are skipped by ScoreEmojis.
var emojiSentiment = map[string]float64{
	"😊": 1.0, "😃": 1.0, "😄": 1.0, "😁": 1.0, "😆": 1.0,
	"😍": 1.0, "🥰": 1.0, "😘": 1.0, "👍": 1.0, "❤️": 1.0, "❤": 1.0,
	"🙂": 0.7, "😌": 0.7, "😉": 0.7, "🙃": 0.5,
	"😐": 0.0, "😑": 0.0, "😶": 0.0, "🤔": 0.0,
	"😕": -0.3, "😟": -0.5, "😔": -0.5, "😞": -0.7, "😒": -0.7,
	"😣": -0.8, "😖": -0.8,
	"😡": -1.0, "😠": -1.0, "😤": -1.0, "😭": -1.0, "😢": -1.0,
	"😩": -1.0, "👎": -1.0, "💔": -1.0,
}

// ScoreEmojis averages the table weights of the recognized emoji in the list.
// Unrecognized emoji are ignored; if none are recognized (or the list is
// empty) the score is 0. The result is always within [-1, 1].
func ScoreEmojis(emojis []string) float64 {
	if len(emojis) == 0 {
		return 0.0
	}

	total := 0.0
	counted := 0
	for _, e := range emojis {
		if weight, ok := emojiSentiment[e]; ok {
			total += weight
			counted++
		}
	}

	if counted == 0 {
		return 0.0
	}
	return total / float64(counted)
}

// LabelEmoji returns the display emoji for a sentiment label.
func LabelEmoji(label string) string {
	switch label {
	case LabelPositive:
		return "😊"
	case LabelNegative:
		return "😞"
	default:
		return "😐"
	}
}

// LabelColor returns the chart hex color for a sentiment label.
func LabelColor(label string) string {
	switch label {
	case LabelPositive:
		return "#4ade80"
	case LabelNegative:
		return "#f87171"
	default:
		return "#a3a3a3"
	}
}
