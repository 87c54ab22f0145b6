package mock

import (
	"context"

	"github.com/fwojciec/textbot"
)

var _ textbot.ContentFetcher = (*ContentFetcher)(nil)

// ContentFetcher is a mock implementation of textbot.ContentFetcher.
type ContentFetcher struct {
	FetchContentFn func(ctx context.Context, query textbot.Query) (string, error)
}

func (f *ContentFetcher) FetchContent(ctx context.Context, query textbot.Query) (string, error) {
	return f.FetchContentFn(ctx, query)
}
