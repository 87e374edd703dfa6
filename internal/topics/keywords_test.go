package topics

import (
	"testing"

	"comment-lens/internal/models"
)

func TestExtractKeywordsFiltersStopwords(t *testing.T) {
	comments := []models.Comment{
		{Text: "great video thanks"},
		{Text: "great tutorial video"},
	}

	got := ExtractKeywords(comments, 10)

	if len(got) != 1 {
		t.Fatalf("got %v, want exactly [tutorial]", got)
	}
	if got[0].Word != "tutorial" || got[0].Count != 1 {
		t.Errorf("got %v, want tutorial with count 1", got[0])
	}
}

func TestExtractKeywordsDropsMixedTokens(t *testing.T) {
	comments := []models.Comment{
		{Text: "covid19 lockdown footage, incredible footage!"},
	}

	got := ExtractKeywords(comments, 10)

	for _, kw := range got {
		if kw.Word == "covid" || kw.Word == "covid19" {
			t.Errorf("mixed alphanumeric token surfaced as %q, want it dropped whole", kw.Word)
		}
	}
	if got[0].Word != "footage" || got[0].Count != 2 {
		t.Errorf("got %v, want footage with count 2 first", got[0])
	}
	found := false
	for _, kw := range got {
		if kw.Word == "incredible" {
			found = true
		}
	}
	if !found {
		t.Error("expected punctuation-adjacent word to survive tokenization")
	}
}

func TestExtractKeywordsOrdering(t *testing.T) {
	comments := []models.Comment{
		{Text: "lighting lighting lighting camera camera tripod"},
	}

	got := ExtractKeywords(comments, 10)

	if len(got) != 3 {
		t.Fatalf("got %d keywords, want 3: %v", len(got), got)
	}
	if got[0].Word != "lighting" || got[0].Count != 3 {
		t.Errorf("first = %v, want lighting x3", got[0])
	}
	if got[1].Word != "camera" || got[1].Count != 2 {
		t.Errorf("second = %v, want camera x2", got[1])
	}
	if got[2].Word != "tripod" {
		t.Errorf("third = %v, want tripod", got[2])
	}
}

func TestExtractKeywordsTieBrokenByFirstSeen(t *testing.T) {
	comments := []models.Comment{
		{Text: "zebra apple zebra apple"},
	}

	got := ExtractKeywords(comments, 10)

	if len(got) != 2 || got[0].Word != "zebra" || got[1].Word != "apple" {
		t.Errorf("got %v, want zebra before apple (first encountered wins ties)", got)
	}
}

func TestExtractKeywordsShortTokensDropped(t *testing.T) {
	got := ExtractKeywords([]models.Comment{{Text: "go is ok but gophers are lovely"}}, 10)
	for _, kw := range got {
		if len(kw.Word) <= 2 {
			t.Errorf("short token %q survived filtering", kw.Word)
		}
	}
}

func TestExtractKeywordsTopNCap(t *testing.T) {
	got := ExtractKeywords([]models.Comment{{Text: "alpha bravo charlie delta echo foxtrot"}}, 3)
	if len(got) != 3 {
		t.Errorf("got %d keywords, want capped at 3", len(got))
	}
}

func TestExtractKeywordsDegenerateInputs(t *testing.T) {
	t.Run("NoComments", func(t *testing.T) {
		got := ExtractKeywords(nil, 10)
		if len(got) != 1 || got[0].Word != "nodata" {
			t.Errorf("got %v, want nodata placeholder", got)
		}
	})

	t.Run("OnlyStopwords", func(t *testing.T) {
		got := ExtractKeywords([]models.Comment{{Text: "the video is great thanks"}}, 10)
		if len(got) != 1 || got[0].Word != "nodata" {
			t.Errorf("got %v, want nodata placeholder", got)
		}
	})

	t.Run("BlankText", func(t *testing.T) {
		got := ExtractKeywords([]models.Comment{{Text: "   "}}, 10)
		if len(got) != 1 || got[0].Word != "nodata" {
			t.Errorf("got %v, want nodata placeholder", got)
		}
	})
}
