package textbot

// Prefix is a phrasing template placed in front of the search term.
type Prefix string

// Prefix constants in menu order.
const (
	PrefixWhoIs        Prefix = "who is"
	PrefixWhatIs       Prefix = "what is"
	PrefixTheHistoryOf Prefix = "the history of"
)

// Prefixes returns the supported prefixes in menu order.
func Prefixes() []Prefix {
	return []Prefix{PrefixWhoIs, PrefixWhatIs, PrefixTheHistoryOf}
}

// PrefixByIndex returns the prefix for a 1-based menu index.
func PrefixByIndex(i int) (Prefix, error) {
	prefixes := Prefixes()
	if i < 1 || i > len(prefixes) {
		return "", Errorf(EINVALID, "prefix option must be between 1 and %d, got %d", len(prefixes), i)
	}
	return prefixes[i-1], nil
}

// Validate returns an error if the prefix is not one of the supported prefixes.
func (p Prefix) Validate() error {
	for _, known := range Prefixes() {
		if p == known {
			return nil
		}
	}
	return Errorf(EINVALID, "unknown prefix %q", string(p))
}

// Phrase joins the prefix and the term, e.g. "who is Ada Lovelace".
// An empty prefix returns the term unchanged.
func (p Prefix) Phrase(term string) string {
	if p == "" {
		return term
	}
	return string(p) + " " + term
}
