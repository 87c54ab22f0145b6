// Package watson implements textbot.KeywordExtractor using IBM Watson
// Natural Language Understanding.
package watson

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/IBM/go-sdk-core/v5/core"
	"github.com/fwojciec/textbot"
	nlu "github.com/watson-developer-cloud/go-sdk/v3/naturallanguageunderstandingv1"
)

// DefaultVersion is the NLU API version date sent with every request.
const DefaultVersion = "2018-11-16"

// DefaultTimeout is the default timeout for a single analyze call.
const DefaultTimeout = 15 * time.Second

// Ensure KeywordExtractor implements textbot.KeywordExtractor at compile time.
var _ textbot.KeywordExtractor = (*KeywordExtractor)(nil)

// KeywordExtractor calls the NLU analyze endpoint with the keywords feature.
type KeywordExtractor struct {
	service *nlu.NaturalLanguageUnderstandingV1
}

type config struct {
	version       string
	client        *http.Client
	authenticator core.Authenticator
}

// Option configures a KeywordExtractor.
type Option func(*config)

// WithVersion overrides the API version date.
func WithVersion(version string) Option {
	return func(c *config) {
		c.version = version
	}
}

// WithHTTPClient sets the HTTP client used for analyze requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.client = client
	}
}

// WithAuthenticator replaces the default IAM authenticator built from the
// API key.
func WithAuthenticator(authenticator core.Authenticator) Option {
	return func(c *config) {
		c.authenticator = authenticator
	}
}

// NewKeywordExtractor creates a KeywordExtractor for the service instance at
// serviceURL. Requests authenticate with an IAM token obtained for apiKey.
func NewKeywordExtractor(serviceURL, apiKey string, opts ...Option) (*KeywordExtractor, error) {
	cfg := &config{
		version: DefaultVersion,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.authenticator == nil {
		cfg.authenticator = &core.IamAuthenticator{ApiKey: apiKey}
	}

	service, err := nlu.NewNaturalLanguageUnderstandingV1(&nlu.NaturalLanguageUnderstandingV1Options{
		Version:       core.StringPtr(cfg.version),
		Authenticator: cfg.authenticator,
	})
	if err != nil {
		return nil, textbot.Errorf(textbot.EINVALID, "watson client: %v", err)
	}
	if err := service.SetServiceURL(strings.TrimSuffix(serviceURL, "/")); err != nil {
		return nil, textbot.Errorf(textbot.EINVALID, "watson service URL: %v", err)
	}
	service.Service.SetHTTPClient(cfg.client)

	return &KeywordExtractor{service: service}, nil
}

// ExtractKeywords returns the keyword set Watson finds in text.
func (k *KeywordExtractor) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, textbot.Errorf(textbot.EINVALID, "text required")
	}

	result, response, err := k.service.AnalyzeWithContext(ctx, &nlu.AnalyzeOptions{
		Text: core.StringPtr(text),
		Features: &nlu.Features{
			Keywords: &nlu.KeywordsOptions{},
		},
	})
	if err != nil {
		if response != nil && response.StatusCode != 0 {
			return nil, textbot.Errorf(textbot.EEXTERNAL, "watson HTTP %d: %v", response.StatusCode, err)
		}
		return nil, textbot.Errorf(textbot.EEXTERNAL, "watson request failed: %v", err)
	}

	return ParseKeywords(result)
}

// ParseKeywords reads the text of every keyword in an analyze result.
// A result without a keywords field is an external failure.
func ParseKeywords(result *nlu.AnalysisResults) ([]string, error) {
	if result == nil || result.Keywords == nil {
		return nil, textbot.Errorf(textbot.EEXTERNAL, "watson response has no keywords")
	}

	words := make([]string, 0, len(result.Keywords))
	for _, kw := range result.Keywords {
		if kw.Text != nil {
			words = append(words, *kw.Text)
		}
	}
	return textbot.NewKeywordSet(words...), nil
}
