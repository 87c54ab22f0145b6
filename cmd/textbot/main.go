package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/textbot"
	"github.com/fwojciec/textbot/gemini"
	textbothttp "github.com/fwojciec/textbot/http"
	"github.com/fwojciec/textbot/pipeline"
	"github.com/fwojciec/textbot/readability"
	"github.com/fwojciec/textbot/sentences"
	textbotslog "github.com/fwojciec/textbot/slog"
	"github.com/fwojciec/textbot/trafilatura"
	"github.com/fwojciec/textbot/watson"
	"github.com/fwojciec/textbot/web"
	"github.com/fwojciec/textbot/wikipedia"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// Credentials may live in a .env file next to the binary's working directory.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Collaborators for end-to-end testing. Built from flags when nil.
	ContentFetcher   textbot.ContentFetcher
	KeywordExtractor textbot.KeywordExtractor

	fetcher textbot.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
// Errors are reported on stderr before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdin, stdout, stderr)
	if err != nil {
		msg := textbot.ErrorMessage(err)
		if textbot.ErrorCode(err) == textbot.EINTERNAL {
			msg = err.Error()
		}
		fmt.Fprintf(stderr, "error: %s\n", msg)
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("textbot"),
		kong.Description("Fetch an encyclopedia article and annotate its first sentences with keywords."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if slices.Contains(args, "--help") || slices.Contains(args, "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	content, err := m.contentFetcher(cli, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	keywords, err := m.keywordExtractor(ctx, cli, logger)
	if err != nil {
		return err
	}

	segmenter, err := sentences.NewSegmenter(cli.Lang)
	if err != nil {
		return err
	}

	var limiter *rate.Limiter
	if cli.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cli.Rate), 1)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Pipeline: &pipeline.Pipeline{
			Content:      content,
			Segmenter:    segmenter,
			Keywords:     keywords,
			MaxSentences: cli.MaxSentences,
			Concurrency:  cli.Concurrency,
			Limiter:      limiter,
			Logger:       logger,
		},
	}

	return cli.Run(deps)
}

func (m *Main) contentFetcher(cli *CLI, logger *slog.Logger) (textbot.ContentFetcher, error) {
	if m.ContentFetcher != nil {
		return m.ContentFetcher, nil
	}

	m.fetcher = textbotslog.NewLoggingFetcher(
		textbothttp.NewFetcher(textbothttp.WithTimeout(cli.Timeout)),
		logger,
	)

	var content textbot.ContentFetcher
	switch cli.Source {
	case "web":
		var extractor textbot.Extractor = trafilatura.NewExtractor()
		if cli.Extractor == "readability" {
			extractor = readability.NewExtractor()
		}
		content = web.NewContentFetcher(m.fetcher, extractor)
	default:
		content = wikipedia.NewContentFetcher(m.fetcher, wikipedia.WithLanguage(cli.Lang))
	}
	return textbotslog.NewLoggingContentFetcher(content, logger), nil
}

func (m *Main) keywordExtractor(ctx context.Context, cli *CLI, logger *slog.Logger) (textbot.KeywordExtractor, error) {
	if m.KeywordExtractor != nil {
		return m.KeywordExtractor, nil
	}

	var keywords textbot.KeywordExtractor
	switch cli.Keywords {
	case "gemini":
		if cli.GeminiAPIKey == "" {
			return nil, textbot.Errorf(textbot.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     cli.GeminiAPIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: cli.Timeout},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		keywords = gemini.NewKeywordExtractor(client, cli.GeminiModel)
	default:
		if cli.WatsonAPIKey == "" || cli.WatsonURL == "" {
			return nil, textbot.Errorf(textbot.EINVALID, "IBM_WATSON_API_KEY and IBM_WATSON_API_URL must be set to use Watson keywords")
		}
		extractor, err := watson.NewKeywordExtractor(cli.WatsonURL, cli.WatsonAPIKey,
			watson.WithHTTPClient(&http.Client{Timeout: cli.Timeout}))
		if err != nil {
			return nil, err
		}
		keywords = extractor
	}
	return textbotslog.NewLoggingKeywordExtractor(keywords, logger), nil
}
