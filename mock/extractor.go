package mock

import "github.com/fwojciec/textbot"

var _ textbot.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of textbot.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*textbot.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*textbot.ExtractResult, error) {
	return e.ExtractFn(html)
}
