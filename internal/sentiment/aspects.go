package sentiment

import (
	"strings"
	"unicode"
)

// commonAspects maps each feedback dimension to the terms that signal it.
var commonAspects = map[string][]string{
	"content":      {"video", "content", "videos", "channel", "episode", "vlog", "series"},
	"quality":      {"quality", "resolution", "hd", "4k", "footage", "production", "editing", "edited"},
	"audio":        {"audio", "sound", "volume", "mic", "voice", "music", "background", "noise"},
	"presentation": {"presentation", "speaking", "talk", "speech", "presenter", "host", "explained", "explaining", "explanation"},
	"information":  {"information", "informative", "learn", "learned", "educational", "knowledge", "useful", "helpful"},
	"length":       {"length", "duration", "long", "short", "longer", "shorter", "time"},
}

// DetectAspects reports which aspect categories a comment mentions and the
// terms that matched. A term matches as a whole word or as a substring; the
// substring check deliberately catches compounds like "soundtrack". Categories
// with no matches are omitted.
func DetectAspects(text string) map[string][]string {
	text = strings.ToLower(text)

	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = true
	}

	mentioned := make(map[string][]string)
	for aspect, terms := range commonAspects {
		for _, term := range terms {
			if words[term] || strings.Contains(text, term) {
				mentioned[aspect] = append(mentioned[aspect], term)
			}
		}
	}
	return mentioned
}
