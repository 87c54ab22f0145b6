// Package sentences implements textbot.Segmenter with the Punkt sentence
// boundary detector from github.com/neurosnap/sentences.
package sentences

import (
	"strings"

	"github.com/fwojciec/textbot"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// DefaultLanguage is the language used when none is given.
const DefaultLanguage = "en"

// Ensure Segmenter implements textbot.Segmenter at compile time.
var _ textbot.Segmenter = (*Segmenter)(nil)

type tokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// Segmenter splits prose into sentences using a pre-trained Punkt model.
type Segmenter struct {
	tokenizer tokenizer
}

// NewSegmenter creates a Segmenter for lang. Only English is supported.
func NewSegmenter(lang string) (*Segmenter, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	if lang != "en" {
		return nil, textbot.Errorf(textbot.EINVALID, "unsupported segmentation language %q", lang)
	}

	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &Segmenter{tokenizer: tok}, nil
}

// Segment returns the sentences of text in order.
// Whitespace around each sentence is trimmed and empty pieces are dropped.
func (s *Segmenter) Segment(text string) ([]string, error) {
	result := []string{}
	if strings.TrimSpace(text) == "" {
		return result, nil
	}

	for _, sent := range s.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}
	return result, nil
}
