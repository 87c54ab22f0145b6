// Package pipeline runs the text pipeline for a session: fetch the article,
// sanitize it, split it into sentences and annotate them with keywords.
// Stages run strictly in order and the first failure aborts the run.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/textbot"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Pipeline orchestrates the collaborators that turn a search term into
// annotated sentences.
type Pipeline struct {
	Content   textbot.ContentFetcher
	Segmenter textbot.Segmenter
	Keywords  textbot.KeywordExtractor

	// MaxSentences caps the sentences kept after segmentation.
	// Zero or less selects textbot.DefaultMaxSentences.
	MaxSentences int

	// Concurrency is the number of keyword requests in flight.
	// Values below 2 annotate sentences one at a time, in order.
	Concurrency int

	// Limiter throttles keyword requests. Nil means unlimited.
	Limiter *rate.Limiter

	Logger *slog.Logger
}

type stage struct {
	name string
	run  func(context.Context, *textbot.Session) error
}

// Run executes every stage against the session.
// The session must be fresh; it is not safe to share between runs.
func (p *Pipeline) Run(ctx context.Context, s *textbot.Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	logger := p.logger().With("session", s.ID)
	logger.Info("starting", "term", s.SearchTerm, "prefix", string(s.Prefix))

	stages := []stage{
		{name: "fetch content", run: p.FetchContent},
		{name: "sanitize", run: p.Sanitize},
		{name: "segment", run: p.Segment},
		{name: "annotate", run: p.Annotate},
	}
	for _, st := range stages {
		logger.Info(st.name)
		if err := st.run(ctx, s); err != nil {
			logger.Error("stage failed", "stage", st.name, "err", err)
			return err
		}
		logger.Info("state updated", "stage", s.Stage.String(), "fields", strings.Join(s.ChangedFields, ","))
	}

	s.Stage = textbot.StageDone
	logger.Info("finishing", "sentences", len(s.Sentences))
	return nil
}

// FetchContent retrieves the article for the session's search term and
// stores it as the raw content.
func (p *Pipeline) FetchContent(ctx context.Context, s *textbot.Session) error {
	if s.SearchTerm == "" {
		return textbot.Errorf(textbot.EPRECONDITION, "search term not set")
	}

	content, err := p.Content.FetchContent(ctx, s.Query())
	if err != nil {
		return external(err, "fetch content for %q", s.SearchTerm)
	}
	if content == "" {
		return textbot.Errorf(textbot.EEXTERNAL, "no content returned for %q", s.SearchTerm)
	}

	s.RawContent = content
	s.Stage = textbot.StageContentFetched
	s.Update("rawContent")
	return nil
}

// Sanitize strips blank lines, markup and date ranges from the raw content.
func (p *Pipeline) Sanitize(_ context.Context, s *textbot.Session) error {
	if s.Stage < textbot.StageContentFetched {
		return textbot.Errorf(textbot.EPRECONDITION, "raw content not set")
	}

	s.SanitizedContent = textbot.Sanitize(s.RawContent)
	s.Stage = textbot.StageSanitized
	s.Update("sanitizedContent")
	return nil
}

// Segment splits the sanitized content into sentences and keeps the first
// MaxSentences of them. The previous sentence list is replaced as a whole.
// Sanitized content that is empty, such as an article made only of headings,
// yields no sentences.
func (p *Pipeline) Segment(_ context.Context, s *textbot.Session) error {
	if s.Stage < textbot.StageSanitized {
		return textbot.Errorf(textbot.EPRECONDITION, "sanitized content not set")
	}

	var texts []string
	if s.SanitizedContent != "" {
		var err error
		if texts, err = p.Segmenter.Segment(s.SanitizedContent); err != nil {
			return err
		}
	}

	s.Sentences = textbot.LimitSentences(textbot.ToSentences(texts), p.maxSentences())
	s.Stage = textbot.StageSegmented
	s.Update("sentences")
	return nil
}

// Annotate attaches keywords to every sentence of the session.
func (p *Pipeline) Annotate(ctx context.Context, s *textbot.Session) error {
	if err := Annotate(ctx, p.Keywords, s.Sentences, p.Concurrency, p.Limiter); err != nil {
		return err
	}

	s.Stage = textbot.StageAnnotated
	s.Update("sentences")
	return nil
}

func (p *Pipeline) maxSentences() int {
	if p.MaxSentences <= 0 {
		return textbot.DefaultMaxSentences
	}
	return p.MaxSentences
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.Logger
}

// external returns err unchanged if it already carries an application code,
// otherwise it reports it as an external service failure.
func external(err error, format string, args ...any) error {
	if textbot.ErrorCode(err) != textbot.EINTERNAL {
		return err
	}
	args = append(args, err)
	return textbot.Errorf(textbot.EEXTERNAL, format+": %v", args...)
}
