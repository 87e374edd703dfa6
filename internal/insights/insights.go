// Package insights aggregates analyzed comments into the per-request
// analysis document: headline stats, sentiment breakdowns, topic and keyword
// distributions, and surfaced comments.
package insights

import (
	"math"
	"sort"
	"strings"

	"comment-lens/internal/models"
	"comment-lens/internal/sentiment"
	"comment-lens/internal/topics"
)

const (
	topCommentCount    = 5
	recentCommentCount = 5

	// Combined-score bands for the per-aspect rollup.
	aspectPositiveThreshold = 0.2
	aspectNegativeThreshold = -0.2
)

// Options bounds the sizes of the derived lists.
type Options struct {
	TopKeywords int
	MaxIdeas    int
}

// BuildAnalysis turns a set of sentiment-analyzed comments into the full
// analysis document. Comments must already carry their Sentiment label and
// SentimentData; basic stats still come out for an empty set.
func BuildAnalysis(comments []models.Comment, opts Options) *models.AnalysisResult {
	result := &models.AnalysisResult{
		BasicStats:      buildBasicStats(comments),
		SentimentData:   buildSentimentSummary(comments),
		AspectSentiment: buildAspectSentiment(comments),
		TopicData:       topics.ExtractTopics(comments),
		ContentIdeas:    topics.GenerateContentIdeas(comments, opts.MaxIdeas),
		Keywords:        topics.ExtractKeywords(comments, opts.TopKeywords),
		TopComments:     topComments(comments),
		RecentComments:  recentComments(comments),
	}
	return result
}

func buildBasicStats(comments []models.Comment) models.BasicStats {
	stats := models.BasicStats{TotalComments: len(comments)}
	for _, c := range comments {
		stats.TotalLikes += int64(c.Likes)
		stats.TotalReplies += int64(c.ReplyCount)
	}
	if stats.TotalComments > 0 {
		rate := float64(stats.TotalLikes) / float64(stats.TotalComments)
		stats.EngagementRate = math.Round(rate*10) / 10
	}
	return stats
}

func buildSentimentSummary(comments []models.Comment) models.SentimentSummary {
	counts := map[string]int{
		sentiment.LabelPositive: 0,
		sentiment.LabelNeutral:  0,
		sentiment.LabelNegative: 0,
	}
	for _, c := range comments {
		label := c.Sentiment
		if _, ok := counts[label]; !ok {
			label = sentiment.LabelNeutral
		}
		counts[label]++
	}

	total := len(comments)
	percentages := make(map[string]int, len(counts))
	for label, n := range counts {
		if total == 0 {
			percentages[label] = 0
			continue
		}
		percentages[label] = int(math.Round(float64(n) / float64(total) * 100))
	}

	ordered := []string{sentiment.LabelPositive, sentiment.LabelNeutral, sentiment.LabelNegative}
	formatted := make([]models.SentimentSlice, 0, len(ordered))
	for _, label := range ordered {
		formatted = append(formatted, models.SentimentSlice{
			Name:       titleCase(label),
			Value:      counts[label],
			Percentage: percentages[label],
			Emoji:      sentiment.LabelEmoji(label),
		})
	}

	return models.SentimentSummary{
		Counts:      counts,
		Percentages: percentages,
		Formatted:   formatted,
	}
}

// buildAspectSentiment groups combined scores by mentioned aspect and bands
// each group into positive, neutral, and negative fractions.
func buildAspectSentiment(comments []models.Comment) map[string]models.AspectSummary {
	scores := map[string][]float64{}
	for _, c := range comments {
		if c.SentimentData == nil {
			continue
		}
		for aspect := range c.SentimentData.Aspects {
			scores[aspect] = append(scores[aspect], c.SentimentData.CombinedScore)
		}
	}

	summary := make(map[string]models.AspectSummary, len(scores))
	for aspect, vals := range scores {
		var sum float64
		var pos, neu, neg int
		for _, v := range vals {
			sum += v
			switch {
			case v > aspectPositiveThreshold:
				pos++
			case v < aspectNegativeThreshold:
				neg++
			default:
				neu++
			}
		}
		n := float64(len(vals))
		summary[aspect] = models.AspectSummary{
			AverageScore: round2(sum / n),
			Positive:     round2(float64(pos) / n),
			Neutral:      round2(float64(neu) / n),
			Negative:     round2(float64(neg) / n),
			MentionCount: len(vals),
		}
	}
	return summary
}

func topComments(comments []models.Comment) []models.Comment {
	sorted := make([]models.Comment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Likes > sorted[j].Likes
	})
	return capComments(sorted, topCommentCount)
}

// recentComments orders by the normalized date string, which sorts
// chronologically without re-parsing.
func recentComments(comments []models.Comment) []models.Comment {
	sorted := make([]models.Comment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return capComments(sorted, recentCommentCount)
}

func capComments(comments []models.Comment, n int) []models.Comment {
	if len(comments) > n {
		comments = comments[:n]
	}
	return comments
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
