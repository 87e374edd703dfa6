package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"comment-lens/internal/models"
)

// minModelConfidence demotes a positive/negative model call to neutral when
// the classifier is unsure. Binary classifiers have no neutral class of their
// own, so low-confidence calls land there instead.
const minModelConfidence = 0.6

// labelVocabulary normalizes classifier label spellings to the three-value
// set. Anything outside the table falls back to its lowercased form.
var labelVocabulary = map[string]string{
	"POSITIVE": LabelPositive,
	"NEGATIVE": LabelNegative,
	"NEUTRAL":  LabelNeutral,
	"1":        LabelPositive,
	"0":        LabelNegative,
	"LABEL_1":  LabelPositive,
	"LABEL_0":  LabelNegative,
}

// ModelScorer classifies text with a pretrained model behind the Gemini API.
type ModelScorer struct {
	client *genai.Client
	model  string
}

func NewModelScorer(ctx context.Context, apiKey, model string) (*ModelScorer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &ModelScorer{client: client, model: model}, nil
}

func (s *ModelScorer) Name() string { return "model" }

func (s *ModelScorer) Score(ctx context.Context, text string) (models.TextScore, error) {
	prompt := fmt.Sprintf(`You are a sentiment classifier for short social media comments.

Classify the sentiment of the comment below. Respond with ONLY a JSON object
in this exact format:
{"label": "POSITIVE" or "NEGATIVE" or "NEUTRAL", "confidence": number between 0 and 1}

Comment: %s`, text)

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return models.TextScore{}, fmt.Errorf("failed to classify text: %w", err)
	}

	responseText := result.Text()
	if responseText == "" {
		return models.TextScore{}, fmt.Errorf("no classification response received")
	}

	return parseClassification(responseText)
}

func parseClassification(response string) (models.TextScore, error) {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")
	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		return models.TextScore{}, fmt.Errorf("no JSON found in response: %s", response)
	}

	var result struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(response[startIdx:endIdx+1]), &result); err != nil {
		return models.TextScore{}, fmt.Errorf("failed to unmarshal classification %q: %w", response[startIdx:endIdx+1], err)
	}

	label := normalizeLabel(result.Label)

	confidence := result.Confidence
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	if (label == LabelPositive || label == LabelNegative) && confidence < minModelConfidence {
		label = LabelNeutral
	}

	// The combiner expects a signed polarity: negative calls score below
	// zero, neutral carries no signal.
	score := confidence
	switch label {
	case LabelNegative:
		score = -confidence
	case LabelNeutral:
		score = 0.0
	}

	return models.TextScore{Label: label, Score: score}, nil
}

func normalizeLabel(raw string) string {
	if mapped, ok := labelVocabulary[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return mapped
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case LabelPositive, LabelNegative, LabelNeutral:
		return strings.ToLower(strings.TrimSpace(raw))
	default:
		return LabelNeutral
	}
}
