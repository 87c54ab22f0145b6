package textbot

// Stage is the position of a session in the pipeline.
type Stage int

// Pipeline stages in execution order.
const (
	StageIdle Stage = iota
	StageContentFetched
	StageSanitized
	StageSegmented
	StageAnnotated
	StageDone
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageContentFetched:
		return "content_fetched"
	case StageSanitized:
		return "sanitized"
	case StageSegmented:
		return "segmented"
	case StageAnnotated:
		return "annotated"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Session holds the inputs and outputs of a single pipeline run.
// A session is owned by one run and is never shared between runs.
type Session struct {
	ID               string      `json:"id"`
	SearchTerm       string      `json:"searchTerm"`
	Prefix           Prefix      `json:"prefix"`
	RawContent       string      `json:"rawContent,omitempty"`
	SanitizedContent string      `json:"sanitizedContent,omitempty"`
	Sentences        []*Sentence `json:"sentences"`
	Stage            Stage       `json:"-"`

	// ChangedFields lists the fields written by the most recent update.
	ChangedFields []string `json:"-"`
}

// NewSession returns an idle session for the given search term and prefix.
func NewSession(searchTerm string, prefix Prefix) *Session {
	return &Session{
		SearchTerm: searchTerm,
		Prefix:     prefix,
		Sentences:  []*Sentence{},
	}
}

// Update records the fields changed by the last stage.
func (s *Session) Update(fields ...string) {
	s.ChangedFields = append([]string(nil), fields...)
}

// Query returns the content query for the session.
func (s *Session) Query() Query {
	return Query{Term: s.SearchTerm, Prefix: s.Prefix}
}
