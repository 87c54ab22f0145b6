package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/textbot"
)

// Ensure LoggingKeywordExtractor implements textbot.KeywordExtractor.
var _ textbot.KeywordExtractor = (*LoggingKeywordExtractor)(nil)

// LoggingKeywordExtractor wraps a KeywordExtractor with debug logging.
type LoggingKeywordExtractor struct {
	next   textbot.KeywordExtractor
	logger *slog.Logger
}

// NewLoggingKeywordExtractor creates a new LoggingKeywordExtractor.
func NewLoggingKeywordExtractor(next textbot.KeywordExtractor, logger *slog.Logger) *LoggingKeywordExtractor {
	return &LoggingKeywordExtractor{next: next, logger: logger}
}

// ExtractKeywords delegates to the wrapped extractor and logs the operation.
func (k *LoggingKeywordExtractor) ExtractKeywords(ctx context.Context, text string) (keywords []string, err error) {
	defer func(begin time.Time) {
		k.logger.Debug("extract keywords",
			"chars", len(text),
			"count", len(keywords),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return k.next.ExtractKeywords(ctx, text)
}
