// Package trafilatura implements textbot.Extractor with go-trafilatura.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/fwojciec/textbot"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements textbot.Extractor at compile time.
var _ textbot.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the title and main text.
func (e *Extractor) Extract(rawHTML string) (*textbot.ExtractResult, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &textbot.ExtractResult{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}
