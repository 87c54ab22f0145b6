package pipeline

import (
	"context"

	"github.com/fwojciec/textbot"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Annotate sets the keywords of every sentence using extractor.
//
// With concurrency below 2 the sentences are processed one after another in
// order. Otherwise up to concurrency requests run at once; results are
// collected by sentence index and assigned only after all of them succeed.
// The first error cancels outstanding requests and is returned.
func Annotate(ctx context.Context, extractor textbot.KeywordExtractor, sentences []*textbot.Sentence, concurrency int, limiter *rate.Limiter) error {
	if concurrency < 2 {
		for i, s := range sentences {
			keywords, err := fetchKeywords(ctx, extractor, limiter, i, s.Text)
			if err != nil {
				return err
			}
			s.Keywords = keywords
		}
		return nil
	}

	results := make([][]string, len(sentences))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, s := range sentences {
		g.Go(func() error {
			keywords, err := fetchKeywords(gctx, extractor, limiter, i, s.Text)
			if err != nil {
				return err
			}
			results[i] = keywords
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, s := range sentences {
		s.Keywords = results[i]
	}
	return nil
}

func fetchKeywords(ctx context.Context, extractor textbot.KeywordExtractor, limiter *rate.Limiter, index int, text string) ([]string, error) {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, external(err, "rate limit keywords for sentence %d", index+1)
		}
	}

	keywords, err := extractor.ExtractKeywords(ctx, text)
	if err != nil {
		return nil, external(err, "extract keywords for sentence %d", index+1)
	}
	return textbot.NewKeywordSet(keywords...), nil
}
