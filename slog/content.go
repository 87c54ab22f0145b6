// Package slog provides log/slog decorators for textbot collaborators.
// Each decorator times the wrapped call and logs its outcome.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/textbot"
)

// Ensure LoggingContentFetcher implements textbot.ContentFetcher.
var _ textbot.ContentFetcher = (*LoggingContentFetcher)(nil)

// LoggingContentFetcher wraps a ContentFetcher with logging.
type LoggingContentFetcher struct {
	next   textbot.ContentFetcher
	logger *slog.Logger
}

// NewLoggingContentFetcher creates a new LoggingContentFetcher.
func NewLoggingContentFetcher(next textbot.ContentFetcher, logger *slog.Logger) *LoggingContentFetcher {
	return &LoggingContentFetcher{next: next, logger: logger}
}

// FetchContent delegates to the wrapped fetcher and logs the operation.
func (f *LoggingContentFetcher) FetchContent(ctx context.Context, query textbot.Query) (content string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch content",
			"term", query.Term,
			"prefix", string(query.Prefix),
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchContent(ctx, query)
}
