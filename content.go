package textbot

import "context"

// Query describes the article to fetch.
type Query struct {
	// Term is the user's search term, e.g. "Ada Lovelace".
	Term string

	// Prefix is the phrasing chosen by the user. Content sources may ignore it.
	Prefix Prefix
}

// ContentFetcher retrieves the raw text of an article.
type ContentFetcher interface {
	// FetchContent returns the raw article text for the query.
	// Returns ENOTFOUND if no article matches and EEXTERNAL if the
	// service fails or its response has no content.
	FetchContent(ctx context.Context, query Query) (string, error)
}

// Fetcher retrieves the body of a URL.
type Fetcher interface {
	// Fetch returns the response body of a GET request to url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the main content as plain text, one paragraph per line.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	Text string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
