package youtube

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"comment-lens/internal/models"
	"comment-lens/shared/config"
)

const (
	// MaxPageSize is the upstream cap on comments per page.
	MaxPageSize = 100

	readonlyScope = "https://www.googleapis.com/auth/youtube.readonly"
)

// CommentPage is one page of a video's comment threads.
type CommentPage struct {
	Comments      []models.Comment
	NextPageToken string
	TotalResults  int64
}

// Client wraps the typed YouTube Data API service.
type Client struct {
	service *youtube.Service
}

// NewClient builds a Data API client. With OAuth client credentials
// configured it runs the device flow and caches the token at the configured
// file; otherwise it authenticates with the plain API key.
func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	var opts []option.ClientOption

	if cfg.UseOAuth() {
		oauthConfig := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       []string{readonlyScope},
			Endpoint:     google.Endpoint,
		}

		token, err := getToken(oauthConfig, cfg.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("failed to get OAuth token: %w", err)
		}

		httpClient := oauth2.NewClient(ctx, &tokenSaver{
			config:    oauthConfig,
			token:     token,
			tokenFile: cfg.TokenFile,
		})
		opts = append(opts, option.WithHTTPClient(httpClient))
	} else {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// ListCommentPage fetches up to pageSize top-level comment threads for a
// video, in upstream order, plus the continuation token for the next page.
func (c *Client) ListCommentPage(ctx context.Context, videoID string, pageSize int, pageToken string) (*CommentPage, error) {
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	call := c.service.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		MaxResults(int64(pageSize)).
		TextFormat("plainText").
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}

	page := &CommentPage{
		NextPageToken: resp.NextPageToken,
	}
	if resp.PageInfo != nil {
		page.TotalResults = resp.PageInfo.TotalResults
	}

	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		cs := item.Snippet.TopLevelComment.Snippet

		text := strings.ReplaceAll(cs.TextDisplay, "<br>", "\n")
		text = strings.ReplaceAll(text, "&nbsp;", " ")

		author := cs.AuthorDisplayName
		if author == "" {
			author = "Anonymous"
		}

		page.Comments = append(page.Comments, models.Comment{
			ID:                 item.Id,
			AuthorName:         author,
			AuthorChannelURL:   cs.AuthorChannelUrl,
			AuthorProfileImage: cs.AuthorProfileImageUrl,
			Text:               text,
			Likes:              models.FlexCount(cs.LikeCount),
			ReplyCount:         models.FlexCount(item.Snippet.TotalReplyCount),
			Date:               formatCommentDate(cs.PublishedAt),
		})
	}

	return page, nil
}

// VideoStats fetches one video's public statistics snapshot.
func (c *Client) VideoStats(ctx context.Context, videoID string) (*models.VideoStatistics, error) {
	resp, err := c.service.Videos.List([]string{"snippet", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}

	if len(resp.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	item := resp.Items[0]
	stats := &models.VideoStatistics{
		Title:        "Unknown Title",
		Channel:      "Unknown Channel",
		Description:  "No description available",
		ThumbnailURL: fmt.Sprintf("https://img.youtube.com/vi/%s/0.jpg", videoID),
	}

	if item.Snippet != nil {
		if item.Snippet.Title != "" {
			stats.Title = item.Snippet.Title
		}
		if item.Snippet.ChannelTitle != "" {
			stats.Channel = item.Snippet.ChannelTitle
		}
		if item.Snippet.Description != "" {
			stats.Description = item.Snippet.Description
		}
		stats.PublishedAt = formatPublishedDate(item.Snippet.PublishedAt)
	}
	if item.Statistics != nil {
		stats.Views = int64(item.Statistics.ViewCount)
		stats.Likes = int64(item.Statistics.LikeCount)
		stats.Comments = int64(item.Statistics.CommentCount)
	}

	return stats, nil
}

// formatCommentDate normalizes an RFC3339 timestamp to a zero-padded
// sortable form. Unparseable input is carried through raw.
func formatCommentDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: could not parse comment date %q", raw)
		}
		return raw
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatPublishedDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}
