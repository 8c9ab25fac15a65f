package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nao1215/veritas/internal/model"
)

const (
	// DefaultEndpoint is the Serper Google Search endpoint.
	DefaultEndpoint = "https://google.serper.dev/search"

	// DefaultTimeout bounds a single search request.
	DefaultTimeout = 10 * time.Second

	// DefaultRateLimit is the number of search requests allowed per second.
	DefaultRateLimit = 5

	// placeholderKeyMarker identifies the key shipped in sample configuration.
	placeholderKeyMarker = "YOUR_SERPER"

	// maxResponseSize caps how much of a search response is read.
	maxResponseSize = 2 * 1024 * 1024
)

// Provider runs a web search and returns the organic results in rank order.
type Provider interface {
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

// Configurable is implemented by providers that can report whether they
// are able to issue queries at all.
type Configurable interface {
	Configured() bool
}

// IsUsableAPIKey reports whether key is non-empty and not the sample placeholder.
func IsUsableAPIKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && !strings.Contains(key, placeholderKeyMarker)
}

// SerperClient queries the Serper search API.
type SerperClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// SerperOption configures a SerperClient.
type SerperOption func(*SerperClient)

// WithEndpoint overrides the API endpoint.
func WithEndpoint(endpoint string) SerperOption {
	return func(c *SerperClient) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) SerperOption {
	return func(c *SerperClient) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithRateLimit sets the allowed requests per second. Zero or less disables pacing.
func WithRateLimit(perSecond float64) SerperOption {
	return func(c *SerperClient) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		burst := max(int(perSecond), 1)
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) SerperOption {
	return func(c *SerperClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewSerperClient creates a client authenticated with apiKey.
func NewSerperClient(apiKey string, opts ...SerperOption) *SerperClient {
	c := &SerperClient{
		endpoint: DefaultEndpoint,
		apiKey:   strings.TrimSpace(apiKey),
		client:   &http.Client{Timeout: DefaultTimeout},
		limiter:  rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether the client holds a usable API key.
func (c *SerperClient) Configured() bool {
	return IsUsableAPIKey(c.apiKey)
}

// serperRequest is the request body sent to the API.
type serperRequest struct {
	Q string `json:"q"`
}

// serperResponse is the subset of the API response that is used.
type serperResponse struct {
	Organic []serperOrganic `json:"organic"`
}

type serperOrganic struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Position int    `json:"position"`
}

// Search sends query to the API and returns the organic results.
// A response without an "organic" field yields an empty slice.
func (c *SerperClient) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("search rate limiter: %w", err)
		}
	}

	payload, err := json.Marshal(serperRequest{Q: query})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("search completed",
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize)) //nolint:errcheck
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var decoded serperResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	results := make([]model.SearchResult, 0, len(decoded.Organic))
	for _, o := range decoded.Organic {
		results = append(results, model.SearchResult{
			Title:   o.Title,
			Snippet: o.Snippet,
			Link:    o.Link,
		})
	}
	return results, nil
}
