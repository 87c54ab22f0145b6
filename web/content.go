// Package web implements textbot.ContentFetcher for arbitrary article URLs.
// The search term is treated as the URL of the page to read.
package web

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/textbot"
)

// Ensure ContentFetcher implements textbot.ContentFetcher at compile time.
var _ textbot.ContentFetcher = (*ContentFetcher)(nil)

// ContentFetcher downloads a page and extracts its main text.
type ContentFetcher struct {
	fetcher   textbot.Fetcher
	extractor textbot.Extractor
}

// NewContentFetcher creates a new ContentFetcher.
func NewContentFetcher(fetcher textbot.Fetcher, extractor textbot.Extractor) *ContentFetcher {
	return &ContentFetcher{fetcher: fetcher, extractor: extractor}
}

// FetchContent fetches the page at query.Term and returns its main text.
func (c *ContentFetcher) FetchContent(ctx context.Context, query textbot.Query) (string, error) {
	if err := validateURL(query.Term); err != nil {
		return "", err
	}

	html, err := c.fetcher.Fetch(ctx, query.Term)
	if err != nil {
		return "", textbot.Errorf(textbot.EEXTERNAL, "fetch %s: %v", query.Term, err)
	}

	result, err := c.extractor.Extract(html)
	if err != nil {
		return "", textbot.Errorf(textbot.EEXTERNAL, "extract %s: %v", query.Term, err)
	}
	if strings.TrimSpace(result.Text) == "" {
		return "", textbot.Errorf(textbot.EEXTERNAL, "no article text found at %s", query.Term)
	}

	return result.Text, nil
}

func validateURL(raw string) error {
	if raw == "" {
		return textbot.Errorf(textbot.EINVALID, "article URL required")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return textbot.Errorf(textbot.EINVALID, "invalid article URL %q", raw)
	}
	return nil
}
