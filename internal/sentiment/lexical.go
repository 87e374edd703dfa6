package sentiment

import (
	"context"

	"github.com/jonreiter/govader"

	"comment-lens/internal/models"
)

// Thresholds for the standalone lexical scorer. These are narrower than the
// combiner's (±0.2): the lexical value is raw polarity, while the combiner
// labels an emoji-blended score. The two sets are intentionally distinct.
const (
	lexicalPositiveThreshold = 0.1
	lexicalNegativeThreshold = -0.1
)

// LexicalScorer derives polarity from the VADER lexicon. It needs no network
// access or model download and is the fallback strategy when no model API key
// is configured.
type LexicalScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *LexicalScorer) Name() string { return "lexical" }

func (s *LexicalScorer) Score(_ context.Context, text string) (models.TextScore, error) {
	polarity := s.analyzer.PolarityScores(text).Compound

	switch {
	case polarity > lexicalPositiveThreshold:
		return models.TextScore{Label: LabelPositive, Score: polarity}, nil
	case polarity < lexicalNegativeThreshold:
		return models.TextScore{Label: LabelNegative, Score: polarity}, nil
	default:
		return models.TextScore{Label: LabelNeutral, Score: 0.0}, nil
	}
}
