package textbot

import (
	"fmt"
	"strings"
)

// FormatSentences formats annotated sentences for display.
// Each sentence is numbered and followed by its keywords on an indented line.
// Sentences are separated by blank lines.
func FormatSentences(sentences []*Sentence) string {
	if len(sentences) == 0 {
		return ""
	}

	parts := make([]string, 0, len(sentences))
	for i, s := range sentences {
		keywords := "(none)"
		if len(s.Keywords) > 0 {
			keywords = strings.Join(s.Keywords, ", ")
		}
		parts = append(parts, fmt.Sprintf("%d. %s\n   keywords: %s", i+1, s.Text, keywords))
	}

	return strings.Join(parts, "\n\n")
}
