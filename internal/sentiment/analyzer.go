package sentiment

import (
	"context"
	"log"
	"strings"
	"sync"

	"comment-lens/internal/models"
	"comment-lens/shared/config"
)

// Scorer maps normalized text to a sentiment label and polarity score. The
// strategy is chosen once at analyzer construction and applied uniformly.
type Scorer interface {
	Name() string
	Score(ctx context.Context, text string) (models.TextScore, error)
}

// Analyzer runs the full comment sentiment pipeline: normalize, score text,
// score emoji, detect aspects, combine. It is constructed once at process
// start and handed to request handlers; the only state it carries is the
// scorer and a bounded result memo.
type Analyzer struct {
	scorer    Scorer
	cacheSize int

	mu    sync.RWMutex
	cache map[string]models.TextScore
}

// NewAnalyzer picks the scoring strategy from configuration: model-backed
// when a Gemini key is configured and the client comes up, lexical otherwise.
func NewAnalyzer(ctx context.Context, cfg *config.Config) *Analyzer {
	var scorer Scorer
	if cfg.AI.GeminiAPIKey != "" {
		ms, err := NewModelScorer(ctx, cfg.AI.GeminiAPIKey, cfg.AI.Model)
		if err != nil {
			log.Printf("Warning: model scorer unavailable, using lexical scorer: %v", err)
			scorer = NewLexicalScorer()
		} else {
			scorer = ms
		}
	} else {
		scorer = NewLexicalScorer()
	}

	log.Printf("Sentiment analyzer initialized (strategy: %s)", scorer.Name())
	return NewAnalyzerWithScorer(scorer, cfg.Analysis.CacheSize)
}

func NewAnalyzerWithScorer(scorer Scorer, cacheSize int) *Analyzer {
	return &Analyzer{
		scorer:    scorer,
		cacheSize: cacheSize,
		cache:     make(map[string]models.TextScore),
	}
}

func (a *Analyzer) StrategyName() string { return a.scorer.Name() }

// ScoreText scores normalized text through the configured strategy. Empty
// text short-circuits to neutral without invoking the strategy, and scoring
// errors degrade to neutral rather than failing the comment. Results are
// memoized per exact text; concurrent callers may redundantly compute the
// same uncached entry, which is fine.
func (a *Analyzer) ScoreText(ctx context.Context, text string) models.TextScore {
	if strings.TrimSpace(text) == "" {
		return models.TextScore{Label: LabelNeutral, Score: 0.0}
	}

	a.mu.RLock()
	cached, ok := a.cache[text]
	a.mu.RUnlock()
	if ok {
		return cached
	}

	score, err := a.scorer.Score(ctx, text)
	if err != nil {
		log.Printf("Warning: sentiment scoring failed, defaulting to neutral: %v", err)
		return models.TextScore{Label: LabelNeutral, Score: 0.0}
	}

	a.mu.Lock()
	if len(a.cache) < a.cacheSize {
		a.cache[text] = score
	}
	a.mu.Unlock()

	return score
}

// AnalyzeComment tags one comment with its final sentiment label and the
// sub-scores behind it.
func (a *Analyzer) AnalyzeComment(ctx context.Context, c *models.Comment) {
	cleaned, emojis := Normalize(c.Text)

	textScore := a.ScoreText(ctx, cleaned)
	emojiScore := ScoreEmojis(emojis)
	aspects := DetectAspects(cleaned)

	label, combined := Combine(textScore.Score, emojiScore, len(emojis))

	c.Sentiment = label
	c.SentimentEmoji = LabelEmoji(label)
	c.SentimentData = &models.SentimentData{
		TextSentiment:  textScore,
		EmojiSentiment: emojiScore,
		CombinedScore:  combined,
		Aspects:        aspects,
	}
}

// AnalyzeComments tags every comment in the slice in place and returns it.
func (a *Analyzer) AnalyzeComments(ctx context.Context, comments []models.Comment) []models.Comment {
	log.Printf("Analyzing sentiment for %d comments", len(comments))
	for i := range comments {
		a.AnalyzeComment(ctx, &comments[i])
	}
	return comments
}
