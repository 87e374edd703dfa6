package youtube

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"comment-lens/internal/models"
)

// fakeSource serves scripted pages in order. A page may instead carry an
// error to simulate a mid-pagination failure.
type fakeSource struct {
	pages []fakePage
	calls int
}

type fakePage struct {
	size int
	err  error
}

func (f *fakeSource) ListCommentPage(_ context.Context, videoID string, pageSize int, pageToken string) (*CommentPage, error) {
	if f.calls >= len(f.pages) {
		return &CommentPage{}, nil
	}
	p := f.pages[f.calls]
	f.calls++

	if p.err != nil {
		return nil, p.err
	}

	page := &CommentPage{}
	for i := 0; i < p.size; i++ {
		page.Comments = append(page.Comments, models.Comment{
			ID:   fmt.Sprintf("p%d-c%d", f.calls, i),
			Text: "a comment",
		})
	}
	if f.calls < len(f.pages) {
		page.NextPageToken = fmt.Sprintf("token-%d", f.calls)
	}
	return page, nil
}

func newTestFetcher(src CommentSource) *Fetcher {
	return NewFetcher(src, time.Millisecond)
}

func TestFetchAllTrimsToMaxResults(t *testing.T) {
	src := &fakeSource{pages: []fakePage{{size: 100}, {size: 100}, {size: 30}}}
	f := newTestFetcher(src)

	got, err := f.FetchAll(context.Background(), "vid", 150)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(got) != 150 {
		t.Fatalf("got %d comments, want exactly 150", len(got))
	}
	if got[0].ID != "p1-c0" {
		t.Errorf("first comment = %s, want first of page 1", got[0].ID)
	}
	if got[149].ID != "p2-c49" {
		t.Errorf("last comment = %s, want 50th of page 2", got[149].ID)
	}
	if src.calls != 2 {
		t.Errorf("made %d page requests, want 2 (cap reached mid-page-2)", src.calls)
	}
}

func TestFetchAllPartialFailureReturnsAccumulated(t *testing.T) {
	src := &fakeSource{pages: []fakePage{{size: 50}, {err: errors.New("upstream exploded")}}}
	f := newTestFetcher(src)

	got, err := f.FetchAll(context.Background(), "vid", 0)
	if err != nil {
		t.Fatalf("expected partial result, got error: %v", err)
	}
	if len(got) != 50 {
		t.Errorf("got %d comments, want the 50 fetched before the failure", len(got))
	}
}

func TestFetchAllFirstPageFailurePropagates(t *testing.T) {
	wantErr := errors.New("boom")
	src := &fakeSource{pages: []fakePage{{err: wantErr}}}
	f := newTestFetcher(src)

	_, err := f.FetchAll(context.Background(), "vid", 0)
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want the upstream error when nothing was accumulated", err)
	}
}

func TestFetchAllStopsOnEmptyPage(t *testing.T) {
	src := &fakeSource{pages: []fakePage{{size: 10}, {size: 0}}}
	f := newTestFetcher(src)

	got, err := f.FetchAll(context.Background(), "vid", 0)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("got %d comments, want 10", len(got))
	}
}

func TestFetchAllStopsWithoutContinuationToken(t *testing.T) {
	src := &fakeSource{pages: []fakePage{{size: 40}}}
	f := newTestFetcher(src)

	got, err := f.FetchAll(context.Background(), "vid", 0)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(got) != 40 {
		t.Errorf("got %d comments, want 40", len(got))
	}
	if src.calls != 1 {
		t.Errorf("made %d page requests, want 1 (no continuation token)", src.calls)
	}
}

func TestFetchAllPreservesOrder(t *testing.T) {
	src := &fakeSource{pages: []fakePage{{size: 3}, {size: 2}}}
	f := newTestFetcher(src)

	got, err := f.FetchAll(context.Background(), "vid", 0)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	want := []string{"p1-c0", "p1-c1", "p1-c2", "p2-c0", "p2-c1"}
	if len(got) != len(want) {
		t.Fatalf("got %d comments, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("comment %d = %s, want %s", i, got[i].ID, id)
		}
	}
}
