package topics

import (
	"strings"

	"comment-lens/internal/models"
)

// topicCategory pairs a histogram bucket with the phrases that put a comment
// in it. Order is the display order of the histogram.
type topicCategory struct {
	name     string
	keywords []string
}

// The "?" entry matches inside any longer token too; that over-count is the
// established behavior downstream charts are calibrated against.
var topicCategories = []topicCategory{
	{"tutorial", []string{"how to", "tutorial", "guide", "learn", "step by step", "techniques"}},
	{"review", []string{"review", "opinion", "thoughts on", "what i think", "assessment"}},
	{"question", []string{"question", "wondering", "can you", "how do you", "?"}},
	{"suggestion", []string{"suggestion", "recommend", "should make", "would like to see", "please make"}},
	{"technical", []string{"technical", "software", "hardware", "settings", "configuration", "setup"}},
}

// ExtractTopics builds the topic histogram over a comment set. A comment
// counts at most once per category, via case-insensitive substring matching.
// Empty input yields a "No Data" placeholder; if comments exist but nothing
// matched, a synthetic "other" bucket keeps the series non-empty.
func ExtractTopics(comments []models.Comment) []models.TopicCount {
	if len(comments) == 0 {
		return []models.TopicCount{{Name: "No Data", Value: 1}}
	}

	counts := make(map[string]int, len(topicCategories))
	for _, comment := range comments {
		text := strings.ToLower(comment.Text)
		for _, cat := range topicCategories {
			for _, kw := range cat.keywords {
				if strings.Contains(text, kw) {
					counts[cat.name]++
					break
				}
			}
		}
	}

	result := make([]models.TopicCount, 0, len(topicCategories)+1)
	allZero := true
	for _, cat := range topicCategories {
		if counts[cat.name] > 0 {
			allZero = false
		}
		result = append(result, models.TopicCount{Name: cat.name, Value: counts[cat.name]})
	}

	if allZero {
		result = append(result, models.TopicCount{Name: "other", Value: 1})
	}

	return result
}
