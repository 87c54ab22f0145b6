package mock

import (
	"context"

	"github.com/fwojciec/textbot"
)

var _ textbot.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of textbot.Segmenter.
type Segmenter struct {
	SegmentFn func(text string) ([]string, error)
}

func (s *Segmenter) Segment(text string) ([]string, error) {
	return s.SegmentFn(text)
}

var _ textbot.KeywordExtractor = (*KeywordExtractor)(nil)

// KeywordExtractor is a mock implementation of textbot.KeywordExtractor.
type KeywordExtractor struct {
	ExtractKeywordsFn func(ctx context.Context, text string) ([]string, error)
}

func (k *KeywordExtractor) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	return k.ExtractKeywordsFn(ctx, text)
}
