package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexCount is a non-negative counter that tolerates sloppy JSON encodings.
// Upstream payloads (and caller-supplied comment batches) deliver likes and
// reply counts as numbers, numeric strings, floats, or not at all; anything
// unparseable decodes to 0 instead of failing the whole document.
type FlexCount int64

func (f *FlexCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}

	s := string(data)
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			*f = 0
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexCount(n)
		return nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexCount(int64(fl))
		return nil
	}

	*f = 0
	return nil
}

func (f FlexCount) Int() int { return int(f) }

// Comment is one top-level entry of a video's comment threads.
type Comment struct {
	ID                 string    `json:"id"`
	AuthorName         string    `json:"author_name"`
	AuthorChannelURL   string    `json:"author_channel_url"`
	AuthorProfileImage string    `json:"author_profile_image"`
	Text               string    `json:"text"`
	Likes              FlexCount `json:"likes"`
	ReplyCount         FlexCount `json:"reply_count"`
	Date               string    `json:"date"`

	// Derived by the sentiment pipeline.
	Sentiment      string         `json:"sentiment,omitempty"`
	SentimentEmoji string         `json:"sentiment_emoji,omitempty"`
	SentimentData  *SentimentData `json:"sentiment_data,omitempty"`
}

// SentimentData carries the sub-scores behind a comment's final label.
type SentimentData struct {
	TextSentiment  TextScore           `json:"text_sentiment"`
	EmojiSentiment float64             `json:"emoji_sentiment"`
	CombinedScore  float64             `json:"combined_score"`
	Aspects        map[string][]string `json:"aspects"`
}

// TextScore is the output of a text sentiment scorer.
type TextScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// VideoStatistics is a snapshot of a video's public metadata.
type VideoStatistics struct {
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	Views        int64  `json:"views"`
	Likes        int64  `json:"likes"`
	Comments     int64  `json:"comments"`
	PublishedAt  string `json:"published_at"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}
