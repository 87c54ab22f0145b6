package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/textbot"
	"github.com/fwojciec/textbot/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Pipeline *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Term   string `arg:"" optional:"" help:"Search term, or article URL with --source=web (prompted when omitted)"`
	Prefix int    `short:"p" help:"Prefix option: 1) who is 2) what is 3) the history of (prompted when omitted)"`

	Source    string `default:"wikipedia" enum:"wikipedia,web" env:"TEXTBOT_SOURCE" help:"Content source (wikipedia, web)"`
	Extractor string `default:"trafilatura" enum:"trafilatura,readability" env:"TEXTBOT_EXTRACTOR" help:"Main-text extractor for --source=web (trafilatura, readability)"`
	Keywords  string `default:"watson" enum:"watson,gemini" env:"TEXTBOT_KEYWORDS" help:"Keyword service (watson, gemini)"`
	Lang      string `default:"en" env:"TEXTBOT_LANG" help:"Article language"`

	MaxSentences int           `default:"7" env:"TEXTBOT_MAX_SENTENCES" help:"Number of sentences to keep"`
	Concurrency  int           `short:"c" default:"1" env:"TEXTBOT_CONCURRENCY" help:"Concurrent keyword requests"`
	Rate         float64       `default:"0" env:"TEXTBOT_RATE" help:"Keyword requests per second (0 for unlimited)"`
	Timeout      time.Duration `default:"30s" env:"TEXTBOT_TIMEOUT" help:"Timeout for each external request"`

	WatsonAPIKey string `name:"watson-api-key" env:"IBM_WATSON_API_KEY" help:"IBM Watson NLU API key"`
	WatsonURL    string `name:"watson-url" env:"IBM_WATSON_API_URL" help:"IBM Watson NLU service URL"`
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	GeminiModel  string `name:"gemini-model" default:"gemini-2.5-flash" env:"GEMINI_MODEL" help:"Gemini model for keyword extraction"`

	JSON    bool `help:"Print the session as JSON"`
	Verbose bool `short:"v" help:"Enable debug logging"`
}

// Run asks for any missing input, runs the pipeline and prints the result.
func (c *CLI) Run(deps *Dependencies) error {
	prompter := NewPrompter(deps.Stdin, deps.Stdout)

	term := strings.TrimSpace(c.Term)
	if term == "" {
		var err error
		if term, err = prompter.SearchTerm(); err != nil {
			return err
		}
	}

	var prefix textbot.Prefix
	var err error
	if c.Prefix == 0 {
		prefix, err = prompter.Prefix()
	} else {
		prefix, err = textbot.PrefixByIndex(c.Prefix)
	}
	if err != nil {
		return err
	}

	session := textbot.NewSession(term, prefix)
	if err := deps.Pipeline.Run(deps.Ctx, session); err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(session)
	}

	fmt.Fprintln(deps.Stdout, textbot.FormatSentences(session.Sentences))
	return nil
}
