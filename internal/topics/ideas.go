package topics

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"comment-lens/internal/models"
)

// requestPatterns are the phrases that introduce a viewer request. The text
// trailing a pattern becomes a candidate content idea.
var requestPatterns = []string{
	"can you make",
	"would like to see",
	"please make",
	"should do",
	"next video",
	"tutorial on",
	"comparison",
	"review of",
}

// GenerateContentIdeas mines request-style comments for video ideas, ranks
// them by the source comment's likes, deduplicates, and caps at maxIdeas.
// The result is never empty: degenerate input yields a placeholder record.
func GenerateContentIdeas(comments []models.Comment, maxIdeas int) []models.ContentIdea {
	if len(comments) == 0 {
		return []models.ContentIdea{{Idea: "No comments available for content ideas", Likes: 0, Source: ""}}
	}

	var ideas []models.ContentIdea
	for _, comment := range comments {
		text := strings.ToLower(comment.Text)

		for _, pattern := range requestPatterns {
			idx := strings.Index(text, pattern)
			if idx < 0 {
				continue
			}

			suggestion := strings.TrimSpace(text[idx+len(pattern):])
			if cut := strings.IndexAny(suggestion, ".!?"); cut >= 0 {
				suggestion = suggestion[:cut]
			}
			suggestion = strings.TrimSpace(suggestion)

			if utf8.RuneCountInString(suggestion) <= 3 || len(strings.Fields(suggestion)) < 2 {
				continue
			}

			ideas = append(ideas, models.ContentIdea{
				Idea:   capitalize(suggestion),
				Likes:  int64(comment.Likes),
				Source: comment.ID,
			})
		}
	}

	if len(ideas) == 0 {
		return []models.ContentIdea{{Idea: "No content ideas found in comments", Likes: 0, Source: ""}}
	}

	// Highest-liked first; stable so equal-likes ideas keep mining order.
	sort.SliceStable(ideas, func(i, j int) bool {
		return ideas[i].Likes > ideas[j].Likes
	})

	seen := make(map[string]bool)
	deduped := ideas[:0]
	for _, idea := range ideas {
		if seen[idea.Idea] {
			continue
		}
		seen[idea.Idea] = true
		deduped = append(deduped, idea)
	}

	if maxIdeas > 0 && len(deduped) > maxIdeas {
		deduped = deduped[:maxIdeas]
	}
	return deduped
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
