package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/textbot"
	"github.com/fwojciec/textbot/mock"
	"github.com/fwojciec/textbot/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func numberedSentences(n int) []*textbot.Sentence {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("Sentence %d.", i)
	}
	return textbot.ToSentences(texts)
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	t.Run("calls extractor in order when sequential", func(t *testing.T) {
		t.Parallel()

		var order []string
		extractor := &mock.KeywordExtractor{
			ExtractKeywordsFn: func(_ context.Context, text string) ([]string, error) {
				order = append(order, text)
				return []string{text, text}, nil
			},
		}
		sentences := numberedSentences(4)

		err := pipeline.Annotate(context.Background(), extractor, sentences, 1, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"Sentence 0.", "Sentence 1.", "Sentence 2.", "Sentence 3."}, order)
		for _, s := range sentences {
			assert.Equal(t, []string{s.Text}, s.Keywords)
		}
	})

	t.Run("stops at first sequential failure", func(t *testing.T) {
		t.Parallel()

		var calls int
		extractor := &mock.KeywordExtractor{
			ExtractKeywordsFn: func(_ context.Context, text string) ([]string, error) {
				calls++
				if text == "Sentence 1." {
					return nil, errors.New("boom")
				}
				return []string{"ok"}, nil
			},
		}

		err := pipeline.Annotate(context.Background(), extractor, numberedSentences(5), 0, nil)

		require.Error(t, err)
		assert.Equal(t, textbot.EEXTERNAL, textbot.ErrorCode(err))
		assert.Contains(t, textbot.ErrorMessage(err), "sentence 2")
		assert.Equal(t, 2, calls)
	})

	t.Run("assigns keywords by index when concurrent", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.KeywordExtractor{
			ExtractKeywordsFn: func(_ context.Context, text string) ([]string, error) {
				// Later sentences finish first.
				var n int
				_, _ = fmt.Sscanf(text, "Sentence %d.", &n)
				time.Sleep(time.Duration(10-n) * time.Millisecond)
				return []string{text}, nil
			},
		}
		sentences := numberedSentences(8)

		err := pipeline.Annotate(context.Background(), extractor, sentences, 4, nil)

		require.NoError(t, err)
		for i, s := range sentences {
			assert.Equal(t, fmt.Sprintf("Sentence %d.", i), s.Text)
			assert.Equal(t, []string{s.Text}, s.Keywords)
		}
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int64
		extractor := &mock.KeywordExtractor{
			ExtractKeywordsFn: func(context.Context, string) ([]string, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				inFlight.Add(-1)
				return nil, nil
			},
		}

		err := pipeline.Annotate(context.Background(), extractor, numberedSentences(12), 3, nil)

		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int64(3))
	})

	t.Run("leaves keywords untouched when a concurrent request fails", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		seen := map[string]bool{}
		extractor := &mock.KeywordExtractor{
			ExtractKeywordsFn: func(_ context.Context, text string) ([]string, error) {
				mu.Lock()
				seen[text] = true
				mu.Unlock()
				if text == "Sentence 2." {
					return nil, errors.New("quota exceeded")
				}
				return []string{"k"}, nil
			},
		}
		sentences := numberedSentences(4)

		err := pipeline.Annotate(context.Background(), extractor, sentences, 4, nil)

		require.Error(t, err)
		assert.Equal(t, textbot.EEXTERNAL, textbot.ErrorCode(err))
		assert.Contains(t, textbot.ErrorMessage(err), "quota exceeded")
		for _, s := range sentences {
			assert.Empty(t, s.Keywords)
		}
	})

	t.Run("waits on limiter", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.KeywordExtractor{
			ExtractKeywordsFn: func(context.Context, string) ([]string, error) {
				return []string{"k"}, nil
			},
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		// A limiter with no tokens fails immediately on a canceled context.
		limiter := rate.NewLimiter(rate.Limit(0.001), 0)

		err := pipeline.Annotate(ctx, extractor, numberedSentences(2), 1, limiter)

		require.Error(t, err)
		assert.Equal(t, textbot.EEXTERNAL, textbot.ErrorCode(err))
		assert.Contains(t, textbot.ErrorMessage(err), "sentence 1")
	})

	t.Run("reports limiter failure in parallel mode", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.KeywordExtractor{
			ExtractKeywordsFn: func(context.Context, string) ([]string, error) {
				return []string{"k"}, nil
			},
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		limiter := rate.NewLimiter(rate.Limit(0.001), 0)

		err := pipeline.Annotate(ctx, extractor, numberedSentences(3), 2, limiter)

		require.Error(t, err)
		assert.Equal(t, textbot.EEXTERNAL, textbot.ErrorCode(err))
	})

	t.Run("handles no sentences", func(t *testing.T) {
		t.Parallel()

		err := pipeline.Annotate(context.Background(), nil, nil, 4, nil)

		require.NoError(t, err)
	})
}
