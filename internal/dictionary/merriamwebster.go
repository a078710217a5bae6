package dictionary

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Merriam-Webster Collegiate endpoint.
const DefaultBaseURL = "https://www.dictionaryapi.com/api/v3/references/collegiate/json"

// Config configures a MerriamWebsterClient.
type Config struct {
	BaseURL string
	APIKey  string

	// Timeout bounds a single lookup. Zero falls back to 10s; the provider is
	// never called without a deadline.
	Timeout time.Duration

	// RateLimit is the sustained number of provider calls per second.
	// Zero or less disables limiting.
	RateLimit float64
	Burst     int
}

// MerriamWebsterClient implements Client against the Merriam-Webster
// dictionary API: GET <base>/<word>?key=<api key>.
type MerriamWebsterClient struct {
	http    *resty.Client
	apiKey  string
	limiter *rate.Limiter
}

// NewMerriamWebsterClient creates a new Merriam-Webster API client.
func NewMerriamWebsterClient(cfg Config) *MerriamWebsterClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Inf
	burst := cfg.Burst
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		if burst <= 0 {
			burst = 1
		}
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "WordCache/1.0")

	return &MerriamWebsterClient{
		http:    client,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (c *MerriamWebsterClient) Name() string {
	return "merriam-webster"
}

// Lookup fetches the definition payload for an already normalized word.
func (c *MerriamWebsterClient) Lookup(ctx context.Context, word string) Result {
	if err := c.limiter.Wait(ctx); err != nil {
		return ProviderError{Detail: "dictionary provider request cancelled", Err: err}
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("word", word).
		SetQueryParam("key", c.apiKey).
		Get("/{word}")
	if err != nil {
		return transportError(err)
	}

	return Classify(res.StatusCode(), res.Body())
}

// transportError classifies a failed request. The *url.Error wrapper is
// dropped because its message embeds the request URL, API key included.
func transportError(err error) ProviderError {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return ProviderError{Detail: "dictionary provider timed out", Err: urlErr.Err}
		}
		return ProviderError{Detail: "dictionary provider unreachable", Err: urlErr.Err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ProviderError{Detail: "dictionary provider timed out", Err: err}
	}
	return ProviderError{Detail: "dictionary provider unreachable", Err: err}
}
