package textbot

import (
	"regexp"
	"strings"
)

// dateRangeRe matches "(Month DD, YYYY – Month DD, YYYY)" together with one
// whitespace character in front of it. The separator is any single
// non-alphanumeric, non-space rune or the mis-encoded en dash "â€“".
var dateRangeRe = regexp.MustCompile(`\s?\([\p{L}\p{N}_]+ \d{2}, \d{4} ?(?:â€“|[^\p{L}\p{N}\s]) ?[\p{L}\p{N}_]+ \d{2}, \d{4}\)`)

// Sanitize removes blank lines and markup headings, then parenthetical date ranges.
func Sanitize(text string) string {
	return RemoveParentheticalDateRanges(RemoveBlankLinesAndMarkup(text))
}

// RemoveBlankLinesAndMarkup drops empty lines and lines starting with "=",
// joining the remaining lines with a single space.
func RemoveBlankLinesAndMarkup(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, "=") {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, " ")
}

// RemoveParentheticalDateRanges deletes date ranges such as
// "(January 01, 1900 – February 02, 1980)" from text.
// Removal repeats until nothing matches, so the result is stable.
func RemoveParentheticalDateRanges(text string) string {
	for {
		next := dateRangeRe.ReplaceAllString(text, "")
		if next == text {
			return next
		}
		text = next
	}
}
