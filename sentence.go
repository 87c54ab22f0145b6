package textbot

import (
	"context"
	"sort"
)

// DefaultMaxSentences is the number of sentences kept after segmentation.
const DefaultMaxSentences = 7

// Sentence is a single sentence of the article with its derived keywords.
type Sentence struct {
	Text string `json:"text"`

	// Keywords is a set: sorted, without duplicates or empty strings.
	Keywords []string `json:"keywords"`

	// Images is reserved for later processing and is always empty here.
	Images []string `json:"images"`
}

// ToSentences wraps each text in a Sentence with no keywords and no images.
func ToSentences(texts []string) []*Sentence {
	sentences := make([]*Sentence, 0, len(texts))
	for _, text := range texts {
		sentences = append(sentences, &Sentence{
			Text:     text,
			Keywords: []string{},
			Images:   []string{},
		})
	}
	return sentences
}

// LimitSentences returns the first max sentences in order.
// If there are fewer than max sentences they are all returned.
func LimitSentences(sentences []*Sentence, max int) []*Sentence {
	if max < 0 {
		max = 0
	}
	if len(sentences) <= max {
		return sentences
	}
	return sentences[:max]
}

// NewKeywordSet builds a keyword set from words.
// Empty strings are dropped and duplicates collapsed; the result is sorted.
func NewKeywordSet(words ...string) []string {
	seen := make(map[string]struct{}, len(words))
	set := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		set = append(set, w)
	}
	sort.Strings(set)
	return set
}

// Segmenter splits prose into sentences.
type Segmenter interface {
	// Segment returns the sentences of text in their original order.
	// Output is deterministic for identical input.
	Segment(text string) ([]string, error)
}

// KeywordExtractor finds keywords in a piece of text using an external service.
type KeywordExtractor interface {
	// ExtractKeywords returns the keyword set for text.
	// Returns EEXTERNAL if the service fails or the response has no keywords field.
	ExtractKeywords(ctx context.Context, text string) ([]string, error)
}
