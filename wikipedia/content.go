// Package wikipedia implements textbot.ContentFetcher using the MediaWiki
// action API. The best search hit for the term is returned as a plain-text
// extract, with section headings kept as "== Heading ==" lines.
package wikipedia

import (
	"context"
	"net/url"

	"github.com/fwojciec/textbot"
	"github.com/tidwall/gjson"
)

// DefaultLanguage is the Wikipedia edition used when none is configured.
const DefaultLanguage = "en"

// Ensure ContentFetcher implements textbot.ContentFetcher at compile time.
var _ textbot.ContentFetcher = (*ContentFetcher)(nil)

// ContentFetcher fetches article text from Wikipedia.
type ContentFetcher struct {
	fetcher  textbot.Fetcher
	endpoint string
}

// Option configures a ContentFetcher.
type Option func(*ContentFetcher)

// WithLanguage selects the Wikipedia edition, e.g. "en" or "pt".
func WithLanguage(lang string) Option {
	return func(c *ContentFetcher) {
		c.endpoint = Endpoint(lang)
	}
}

// WithEndpoint overrides the API endpoint. Used in tests.
func WithEndpoint(endpoint string) Option {
	return func(c *ContentFetcher) {
		c.endpoint = endpoint
	}
}

// Endpoint returns the action API URL for a Wikipedia edition.
func Endpoint(lang string) string {
	if lang == "" {
		lang = DefaultLanguage
	}
	return "https://" + lang + ".wikipedia.org/w/api.php"
}

// NewContentFetcher creates a new ContentFetcher that sends requests through fetcher.
func NewContentFetcher(fetcher textbot.Fetcher, opts ...Option) *ContentFetcher {
	c := &ContentFetcher{
		fetcher:  fetcher,
		endpoint: Endpoint(DefaultLanguage),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchContent searches Wikipedia for the query term and returns the
// plain-text extract of the best match. The prefix does not take part in
// the search.
func (c *ContentFetcher) FetchContent(ctx context.Context, query textbot.Query) (string, error) {
	if query.Term == "" {
		return "", textbot.Errorf(textbot.EINVALID, "search term required")
	}

	body, err := c.fetcher.Fetch(ctx, c.searchURL(query.Term))
	if err != nil {
		return "", textbot.Errorf(textbot.EEXTERNAL, "wikipedia request failed: %v", err)
	}

	return ParseExtract(query.Term, body)
}

func (c *ContentFetcher) searchURL(term string) string {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("generator", "search")
	params.Set("gsrsearch", term)
	params.Set("gsrlimit", "1")
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	return c.endpoint + "?" + params.Encode()
}

// ParseExtract reads the article extract from an action API response body.
func ParseExtract(term, body string) (string, error) {
	if !gjson.Valid(body) {
		return "", textbot.Errorf(textbot.EEXTERNAL, "wikipedia returned malformed JSON")
	}

	if msg := gjson.Get(body, "error.info"); msg.Exists() {
		return "", textbot.Errorf(textbot.EEXTERNAL, "wikipedia error: %s", msg.String())
	}

	pages := gjson.Get(body, "query.pages").Array()
	if len(pages) == 0 {
		return "", textbot.Errorf(textbot.ENOTFOUND, "no wikipedia article found for %q", term)
	}

	page := pages[0]
	if page.Get("missing").Bool() {
		return "", textbot.Errorf(textbot.ENOTFOUND, "no wikipedia article found for %q", term)
	}

	extract := page.Get("extract")
	if !extract.Exists() {
		return "", textbot.Errorf(textbot.EEXTERNAL, "wikipedia response for %q has no content", term)
	}

	return extract.String(), nil
}
