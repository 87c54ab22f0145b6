// Package readability implements textbot.Extractor with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/textbot"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements textbot.Extractor at compile time.
var _ textbot.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the title and plain text, one
// paragraph per line.
func (e *Extractor) Extract(rawHTML string) (*textbot.ExtractResult, error) {
	if rawHTML == "" {
		return nil, textbot.Errorf(textbot.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &textbot.ExtractResult{
		Title: article.Title,
		Text:  normalizeLines(article.TextContent),
	}, nil
}

// normalizeLines trims every line and drops the empty ones.
func normalizeLines(text string) string {
	var lines []string
	for line := range strings.SplitSeq(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
