package sentiment

import (
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
)

var (
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	hashtagPattern    = regexp.MustCompile(`#(\S+)`)
	mentionPattern    = regexp.MustCompile(`@(\S+)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// asciiPunctuation mirrors the classic punctuation set stripped from comment
// text. Emoji are never in this set, so they survive the stripping pass.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize cleans raw comment text for scoring while preserving emoji.
// It returns the cleaned text and every emoji rune found in the input, in
// order and with duplicates. Normalize is idempotent on its own output.
func Normalize(text string) (string, []string) {
	var emojis []string
	for _, r := range text {
		if gomoji.ContainsEmoji(string(r)) {
			emojis = append(emojis, string(r))
		}
	}

	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = hashtagPattern.ReplaceAllString(text, "$1")
	text = mentionPattern.ReplaceAllString(text, "$1")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(asciiPunctuation, r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}

	cleaned := whitespacePattern.ReplaceAllString(b.String(), " ")
	return strings.TrimSpace(cleaned), emojis
}
