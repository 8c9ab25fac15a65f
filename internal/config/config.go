package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/veritas/internal/evidence"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "veritas"

	// DefaultListenAddress is where the HTTP service listens.
	DefaultListenAddress = ":5000"

	// StrategySearch selects the evidence search strategy.
	StrategySearch = "search"

	// StrategyClassifier selects the trained classifier strategy.
	StrategyClassifier = "classifier"

	// DefaultStrategy is the strategy used when none is configured.
	DefaultStrategy = StrategySearch

	// DefaultSearchEndpoint is the Serper Google Search endpoint.
	DefaultSearchEndpoint = "https://google.serper.dev/search"

	// DefaultSearchTimeout bounds one search request.
	DefaultSearchTimeout = 10 * time.Second

	// DefaultSearchRateLimit is the number of search requests per second.
	DefaultSearchRateLimit = 5.0

	// DefaultFetchTimeout bounds one page fetch.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultUserAgent is sent when fetching pages. Many news sites reject
	// requests that do not look like a desktop browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

	// DefaultMaxBodySize limits how much of a page is read.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultMaxTextLength is the rune limit of analyzed text.
	DefaultMaxTextLength = 2000

	// DefaultConcurrency is the number of concurrent analyses in batch mode.
	DefaultConcurrency = 4
)

// Config holds all configuration options for Veritas.
// It is built once at startup and passed down explicitly.
type Config struct {
	// ListenAddress is the host:port the HTTP service binds to.
	ListenAddress string

	// Strategy selects the verdict strategy: "search" or "classifier".
	Strategy string

	// SearchAPIKey authenticates against the search API.
	SearchAPIKey string

	// SearchEndpoint is the search API URL.
	SearchEndpoint string

	// SearchTimeout bounds one search request.
	SearchTimeout time.Duration

	// SearchRateLimit caps search requests per second. Zero disables pacing.
	SearchRateLimit float64

	// FetchTimeout bounds one page fetch.
	FetchTimeout time.Duration

	// FetchProxy is an optional SOCKS5 proxy (host:port) for page fetches.
	FetchProxy string

	// UserAgent is the User-Agent header sent when fetching pages.
	UserAgent string

	// MaxBodySize is the maximum number of bytes read from a page.
	// Zero uses the default.
	MaxBodySize int64

	// MaxTextLength is the rune limit of analyzed text.
	MaxTextLength int

	// ModelDir holds vectorizer.json and model.json for the classifier.
	ModelDir string

	// DBDir is the directory of the history database.
	DBDir string

	// SaveHistory records every analysis to the history database.
	SaveHistory bool

	// AllowedOrigins are the CORS origins accepted by the HTTP service.
	AllowedOrigins []string

	// Concurrency is the number of concurrent analyses in batch mode.
	Concurrency int

	// Verbose enables debug logging.
	Verbose bool

	// JSONLog switches the log output to JSON.
	JSONLog bool

	// JSONReport selects JSON output for the check and history commands.
	JSONReport bool

	// MarkdownReport selects Markdown output for the check and history commands.
	MarkdownReport bool

	// ConfigFilePath is an explicit path to the configuration file.
	// When empty, .veritas is searched in the current and home directories.
	ConfigFilePath string

	// Rules is the evidence search vocabulary.
	Rules evidence.Rules
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		ListenAddress:   DefaultListenAddress,
		Strategy:        DefaultStrategy,
		SearchEndpoint:  DefaultSearchEndpoint,
		SearchTimeout:   DefaultSearchTimeout,
		SearchRateLimit: DefaultSearchRateLimit,
		FetchTimeout:    DefaultFetchTimeout,
		UserAgent:       DefaultUserAgent,
		MaxBodySize:     DefaultMaxBodySize,
		MaxTextLength:   DefaultMaxTextLength,
		ModelDir:        filepath.Join(XDGDataDir(), "model"),
		DBDir:           XDGDataDir(),
		SaveHistory:     true,
		AllowedOrigins:  []string{"*"},
		Concurrency:     DefaultConcurrency,
		Rules:           evidence.DefaultRules(),
	}
}

// XDGDataDir returns the XDG data directory for Veritas.
// On Linux: ~/.local/share/veritas
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for Veritas.
// On Linux: ~/.config/veritas
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
// A missing search API key is not an error here; it surfaces as a
// Configuration Error verdict on each request.
func (c *Config) Validate() error {
	if c.Strategy != StrategySearch && c.Strategy != StrategyClassifier {
		return ErrUnknownStrategy
	}
	if c.ListenAddress == "" {
		return ErrEmptyListenAddress
	}
	if c.SearchTimeout <= 0 || c.FetchTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.SearchRateLimit < 0 {
		return ErrInvalidRateLimit
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.MaxTextLength < 10 {
		return ErrInvalidMaxTextLength
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
