package topics

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"comment-lens/internal/models"
)

// englishStopwords is the standard English stopword list.
var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself",
	"she", "her", "hers", "herself", "it", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than", "too",
	"very", "can", "will", "just", "should", "now", "dont", "cant", "wont",
	"isnt", "arent", "wasnt", "werent", "doesnt", "didnt", "havent", "hasnt",
}

// customStopwords are words so common in video comments that they carry no
// signal for this domain.
var customStopwords = []string{
	"video", "youtube", "channel", "subscribe", "like", "comment",
	"watch", "watching", "watched", "thanks", "thank", "please",
	"great", "good", "best", "love", "really", "just", "make",
	"made", "making", "now", "get", "one", "would", "could",
}

var stopwords = buildStopwordSet()

func buildStopwordSet() map[string]bool {
	set := make(map[string]bool, len(englishStopwords)+len(customStopwords))
	for _, w := range englishStopwords {
		set[w] = true
	}
	for _, w := range customStopwords {
		set[w] = true
	}
	return set
}

// ExtractKeywords returns the topN most frequent meaningful words across the
// comment set, ordered by descending count with ties broken by first
// appearance. Tokens that are stopwords, contain non-letters, or are 2
// characters or shorter are discarded. Degenerate input yields a "nodata"
// placeholder so chart series are never empty.
func ExtractKeywords(comments []models.Comment, topN int) []models.KeywordCount {
	if len(comments) == 0 {
		return []models.KeywordCount{{Word: "nodata", Count: 1}}
	}

	var texts []string
	for _, c := range comments {
		texts = append(texts, c.Text)
	}
	allText := strings.ToLower(strings.Join(texts, " "))
	if strings.TrimSpace(allText) == "" {
		return []models.KeywordCount{{Word: "nodata", Count: 1}}
	}

	// Split on punctuation and whitespace but keep digits attached, so a
	// mixed token like "covid19" stays whole and is dropped by the
	// letters-only filter instead of being truncated to "covid".
	tokens := strings.FieldsFunc(allText, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 2 || !allLetters(tok) || stopwords[tok] {
			continue
		}
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = i
		}
		counts[tok]++
	}

	if len(counts) == 0 {
		return []models.KeywordCount{{Word: "nodata", Count: 1}}
	}

	result := make([]models.KeywordCount, 0, len(counts))
	for word, count := range counts {
		result = append(result, models.KeywordCount{Word: word, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return firstSeen[result[i].Word] < firstSeen[result[j].Word]
	})

	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}
	return result
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
