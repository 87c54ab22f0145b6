// Package gemini implements textbot.KeywordExtractor using Google Gemini.
// The model is asked for a JSON object shaped like a Watson keywords
// response: {"keywords": [{"text": ..., "relevance": ...}]}.
package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/textbot"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for keyword extraction.
const DefaultModel = "gemini-2.5-flash"

// Ensure KeywordExtractor implements textbot.KeywordExtractor at compile time.
var _ textbot.KeywordExtractor = (*KeywordExtractor)(nil)

// KeywordExtractor implements textbot.KeywordExtractor using Google Gemini.
type KeywordExtractor struct {
	client *genai.Client
	model  string
}

// NewKeywordExtractor creates a new KeywordExtractor.
// An empty model selects DefaultModel.
func NewKeywordExtractor(client *genai.Client, model string) *KeywordExtractor {
	if model == "" {
		model = DefaultModel
	}
	return &KeywordExtractor{client: client, model: model}
}

// ExtractKeywords asks Gemini for the keywords of a single sentence.
func (k *KeywordExtractor) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, textbot.Errorf(textbot.EINVALID, "text required")
	}

	result, err := k.client.Models.GenerateContent(ctx, k.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, textbot.Errorf(textbot.EEXTERNAL, "gemini request failed: %v", err)
	}
	if result == nil {
		return nil, textbot.Errorf(textbot.EEXTERNAL, "gemini returned nil result")
	}

	return ParseKeywords(result.Text())
}

// BuildConfig returns the GenerateContentConfig for keyword extraction.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract keywords from text. Return the most relevant keywords and key phrases that appear in the text, using their exact wording. Do not invent words that are not in the text.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	}
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"keywords": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"text":      {Type: genai.TypeString},
						"relevance": {Type: genai.TypeNumber},
					},
					Required: []string{"text"},
				},
			},
		},
		Required: []string{"keywords"},
	}
}

// BuildUserPrompt builds the user prompt containing the sentence.
func BuildUserPrompt(text string) string {
	return fmt.Sprintf("<text>%s</text>", text)
}

// ParseKeywords reads the text of every entry in the "keywords" array of
// the model's JSON answer.
func ParseKeywords(raw string) ([]string, error) {
	if !gjson.Valid(raw) {
		return nil, textbot.Errorf(textbot.EEXTERNAL, "gemini returned malformed JSON")
	}

	keywords := gjson.Get(raw, "keywords")
	if !keywords.IsArray() {
		return nil, textbot.Errorf(textbot.EEXTERNAL, "gemini response has no keywords")
	}

	words := make([]string, 0, len(keywords.Array()))
	for _, kw := range keywords.Array() {
		words = append(words, kw.Get("text").String())
	}
	return textbot.NewKeywordSet(words...), nil
}
