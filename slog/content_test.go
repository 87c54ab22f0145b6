package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/textbot"
	"github.com/fwojciec/textbot/mock"
	textbotslog "github.com/fwojciec/textbot/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingContentFetcher_FetchContent(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentFetcher{
			FetchContentFn: func(context.Context, textbot.Query) (string, error) {
				return "Ada was a mathematician.", nil
			},
		}

		f := textbotslog.NewLoggingContentFetcher(inner, logger)
		content, err := f.FetchContent(context.Background(), textbot.Query{Term: "Ada", Prefix: textbot.PrefixWhoIs})

		require.NoError(t, err)
		assert.Equal(t, "Ada was a mathematician.", content)
		output := buf.String()
		assert.Contains(t, output, "fetch content")
		assert.Contains(t, output, "term=Ada")
		assert.Contains(t, output, "prefix=\"who is\"")
		assert.Contains(t, output, "bytes=24")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentFetcher{
			FetchContentFn: func(context.Context, textbot.Query) (string, error) {
				return "", errors.New("network error")
			},
		}

		f := textbotslog.NewLoggingContentFetcher(inner, logger)
		_, err := f.FetchContent(context.Background(), textbot.Query{Term: "Ada"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})
}
