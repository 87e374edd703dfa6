package models

// BasicStats are the headline numbers of an analyzed comment set.
type BasicStats struct {
	TotalComments  int     `json:"total_comments"`
	TotalLikes     int64   `json:"total_likes"`
	TotalReplies   int64   `json:"total_replies"`
	EngagementRate float64 `json:"engagement_rate"`
}

// SentimentSlice is one entry of the formatted sentiment series consumed by
// chart frontends.
type SentimentSlice struct {
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Percentage int    `json:"percentage"`
	Emoji      string `json:"emoji"`
}

// SentimentSummary aggregates sentiment labels across a comment set.
type SentimentSummary struct {
	Counts      map[string]int   `json:"counts"`
	Percentages map[string]int   `json:"percentages"`
	Formatted   []SentimentSlice `json:"formatted"`
}

// TopicCount is one topic category with its comment count. Placeholder
// entries ("No Data", "other") keep downstream chart series non-empty.
type TopicCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ContentIdea is a candidate video idea mined from a request-style comment.
type ContentIdea struct {
	Idea   string `json:"idea"`
	Likes  int64  `json:"likes"`
	Source string `json:"source"`
}

// KeywordCount is one (word, frequency) pair from the keyword extractor.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// AspectSummary aggregates combined sentiment scores over every comment that
// mentioned a given aspect.
type AspectSummary struct {
	AverageScore float64 `json:"average_score"`
	Positive     float64 `json:"positive"`
	Neutral      float64 `json:"neutral"`
	Negative     float64 `json:"negative"`
	MentionCount int     `json:"mention_count"`
}

// AnalysisResult is the full request-scoped aggregate over one comment set.
// It is recomputed on every request and never persisted.
type AnalysisResult struct {
	BasicStats      BasicStats               `json:"basic_stats"`
	SentimentData   SentimentSummary         `json:"sentiment_data"`
	AspectSentiment map[string]AspectSummary `json:"aspect_sentiment"`
	TopicData       []TopicCount             `json:"topic_data"`
	ContentIdeas    []ContentIdea            `json:"content_ideas"`
	Keywords        []KeywordCount           `json:"keywords"`
	TopComments     []Comment                `json:"top_comments"`
	RecentComments  []Comment                `json:"recent_comments"`
}
