package insights

import (
	"testing"

	"comment-lens/internal/models"
)

func analyzed(id, text, label string, likes int64, combined float64, date string, aspects map[string][]string) models.Comment {
	return models.Comment{
		ID:        id,
		Text:      text,
		Likes:     models.FlexCount(likes),
		Date:      date,
		Sentiment: label,
		SentimentData: &models.SentimentData{
			CombinedScore: combined,
			Aspects:       aspects,
		},
	}
}

func TestBuildAnalysisBasicStats(t *testing.T) {
	comments := []models.Comment{
		analyzed("c1", "love it", "positive", 10, 0.8, "2024-01-03 00:00:00", nil),
		analyzed("c2", "okay", "neutral", 5, 0.0, "2024-01-01 00:00:00", nil),
		analyzed("c3", "great stuff", "positive", 20, 0.6, "2024-01-02 00:00:00", nil),
	}
	comments[1].ReplyCount = 4

	result := BuildAnalysis(comments, Options{TopKeywords: 10, MaxIdeas: 5})

	stats := result.BasicStats
	if stats.TotalComments != 3 {
		t.Errorf("TotalComments = %d, want 3", stats.TotalComments)
	}
	if stats.TotalLikes != 35 {
		t.Errorf("TotalLikes = %d, want 35", stats.TotalLikes)
	}
	if stats.TotalReplies != 4 {
		t.Errorf("TotalReplies = %d, want 4", stats.TotalReplies)
	}
	if stats.EngagementRate != 11.7 {
		t.Errorf("EngagementRate = %v, want 11.7", stats.EngagementRate)
	}
}

func TestBuildAnalysisEmptySet(t *testing.T) {
	result := BuildAnalysis(nil, Options{TopKeywords: 10, MaxIdeas: 5})

	if result.BasicStats.TotalComments != 0 || result.BasicStats.EngagementRate != 0 {
		t.Errorf("unexpected basic stats for empty set: %+v", result.BasicStats)
	}
	for _, label := range []string{"positive", "neutral", "negative"} {
		if result.SentimentData.Counts[label] != 0 {
			t.Errorf("count[%s] = %d, want 0", label, result.SentimentData.Counts[label])
		}
		if result.SentimentData.Percentages[label] != 0 {
			t.Errorf("percentage[%s] = %d, want 0", label, result.SentimentData.Percentages[label])
		}
	}
	if len(result.TopicData) != 1 || result.TopicData[0].Name != "No Data" {
		t.Errorf("TopicData = %+v, want single No Data placeholder", result.TopicData)
	}
	if len(result.TopComments) != 0 || len(result.RecentComments) != 0 {
		t.Error("expected no surfaced comments for empty set")
	}
}

func TestSentimentSummaryCountsSumToTotal(t *testing.T) {
	comments := []models.Comment{
		analyzed("c1", "a", "positive", 0, 0.5, "", nil),
		analyzed("c2", "b", "positive", 0, 0.5, "", nil),
		analyzed("c3", "c", "negative", 0, -0.5, "", nil),
		analyzed("c4", "d", "neutral", 0, 0.0, "", nil),
		analyzed("c5", "e", "", 0, 0.0, "", nil), // unlabeled falls back to neutral
	}

	summary := BuildAnalysis(comments, Options{}).SentimentData

	total := 0
	for _, n := range summary.Counts {
		total += n
	}
	if total != len(comments) {
		t.Errorf("counts sum to %d, want %d", total, len(comments))
	}
	if summary.Counts["positive"] != 2 || summary.Counts["neutral"] != 2 || summary.Counts["negative"] != 1 {
		t.Errorf("counts = %v", summary.Counts)
	}
	if summary.Percentages["positive"] != 40 {
		t.Errorf("positive percentage = %d, want 40", summary.Percentages["positive"])
	}
	if len(summary.Formatted) != 3 {
		t.Fatalf("formatted series has %d entries, want 3", len(summary.Formatted))
	}
	if summary.Formatted[0].Name != "Positive" || summary.Formatted[0].Emoji != "😊" {
		t.Errorf("formatted[0] = %+v", summary.Formatted[0])
	}
}

func TestAspectSentimentRollup(t *testing.T) {
	comments := []models.Comment{
		analyzed("c1", "audio good", "positive", 0, 0.8, "", map[string][]string{"audio": {"sound"}}),
		analyzed("c2", "audio bad", "negative", 0, -0.6, "", map[string][]string{"audio": {"sound"}}),
		analyzed("c3", "audio fine", "neutral", 0, 0.1, "", map[string][]string{"audio": {"sound"}}),
		analyzed("c4", "no aspects here", "neutral", 0, 0.0, "", nil),
	}

	aspects := BuildAnalysis(comments, Options{}).AspectSentiment

	audio, ok := aspects["audio"]
	if !ok {
		t.Fatalf("missing audio aspect, got %v", aspects)
	}
	if audio.MentionCount != 3 {
		t.Errorf("MentionCount = %d, want 3", audio.MentionCount)
	}
	if audio.AverageScore != 0.1 {
		t.Errorf("AverageScore = %v, want 0.1", audio.AverageScore)
	}
	if audio.Positive != 0.33 || audio.Negative != 0.33 || audio.Neutral != 0.33 {
		t.Errorf("bands = %v/%v/%v, want thirds", audio.Positive, audio.Neutral, audio.Negative)
	}
	if len(aspects) != 1 {
		t.Errorf("got %d aspects, want 1", len(aspects))
	}
}

func TestTopAndRecentComments(t *testing.T) {
	comments := []models.Comment{
		analyzed("c1", "a", "neutral", 3, 0, "2024-01-05 00:00:00", nil),
		analyzed("c2", "b", "neutral", 9, 0, "2024-01-01 00:00:00", nil),
		analyzed("c3", "c", "neutral", 9, 0, "2024-01-03 00:00:00", nil),
		analyzed("c4", "d", "neutral", 1, 0, "2024-01-07 00:00:00", nil),
		analyzed("c5", "e", "neutral", 5, 0, "2024-01-02 00:00:00", nil),
		analyzed("c6", "f", "neutral", 7, 0, "2024-01-06 00:00:00", nil),
	}

	result := BuildAnalysis(comments, Options{})

	if len(result.TopComments) != 5 {
		t.Fatalf("got %d top comments, want 5", len(result.TopComments))
	}
	// Tied likes keep original order.
	wantTop := []string{"c2", "c3", "c6", "c5", "c1"}
	for i, want := range wantTop {
		if result.TopComments[i].ID != want {
			t.Errorf("top[%d] = %s, want %s", i, result.TopComments[i].ID, want)
		}
	}

	if len(result.RecentComments) != 5 {
		t.Fatalf("got %d recent comments, want 5", len(result.RecentComments))
	}
	wantRecent := []string{"c4", "c6", "c1", "c3", "c5"}
	for i, want := range wantRecent {
		if result.RecentComments[i].ID != want {
			t.Errorf("recent[%d] = %s, want %s", i, result.RecentComments[i].ID, want)
		}
	}

	// Surfacing must not reorder the caller's slice.
	if comments[0].ID != "c1" || comments[5].ID != "c6" {
		t.Error("input slice was mutated")
	}
}
