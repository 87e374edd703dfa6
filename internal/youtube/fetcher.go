package youtube

import (
	"context"
	"log"
	"time"

	"comment-lens/internal/models"
)

// CommentSource lists one page of a video's comments. *Client implements it;
// tests substitute fakes.
type CommentSource interface {
	ListCommentPage(ctx context.Context, videoID string, pageSize int, pageToken string) (*CommentPage, error)
}

// Fetcher drives the pagination loop that assembles a video's full comment
// corpus from the paged upstream API.
type Fetcher struct {
	source    CommentSource
	pageDelay time.Duration
}

func NewFetcher(source CommentSource, pageDelay time.Duration) *Fetcher {
	if pageDelay <= 0 {
		pageDelay = 500 * time.Millisecond
	}
	return &Fetcher{source: source, pageDelay: pageDelay}
}

// FetchAll pulls comment pages until the corpus is complete or maxResults is
// reached (0 means unlimited). Comments keep page order, and order within a
// page. A failure mid-loop returns the comments accumulated so far; only a
// failure before anything was fetched propagates.
func (f *Fetcher) FetchAll(ctx context.Context, videoID string, maxResults int) ([]models.Comment, error) {
	var all []models.Comment
	pageToken := ""

	for page := 1; ; page++ {
		log.Printf("Fetching page %d of comments...", page)

		result, err := f.source.ListCommentPage(ctx, videoID, MaxPageSize, pageToken)
		if err != nil {
			if len(all) > 0 {
				log.Printf("Warning: only retrieved %d comments due to an error: %v", len(all), err)
				return all, nil
			}
			return nil, err
		}

		if len(result.Comments) == 0 {
			break
		}
		all = append(all, result.Comments...)

		if maxResults > 0 && len(all) >= maxResults {
			log.Printf("Reached requested maximum of %d comments", maxResults)
			all = all[:maxResults]
			break
		}

		if result.NextPageToken == "" {
			log.Println("No more comment pages available")
			break
		}
		pageToken = result.NextPageToken

		// Brief pause between pages to respect upstream rate limits.
		select {
		case <-ctx.Done():
			if len(all) > 0 {
				return all, nil
			}
			return nil, ctx.Err()
		case <-time.After(f.pageDelay):
		}
	}

	log.Printf("Successfully retrieved %d comments", len(all))
	return all, nil
}
