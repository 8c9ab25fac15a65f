package config

import (
	"fmt"
	"time"

	"github.com/nao1215/veritas/internal/evidence"
)

// File represents the structure of the .veritas configuration file.
type File struct {
	// Strategy selects "search" or "classifier".
	Strategy string `yaml:"strategy,omitempty"`

	Search     SearchSection     `yaml:"search,omitempty"`
	Fetch      FetchSection      `yaml:"fetch,omitempty"`
	Classifier ClassifierSection `yaml:"classifier,omitempty"`
	Server     ServerSection     `yaml:"server,omitempty"`
	History    HistorySection    `yaml:"history,omitempty"`
}

// SearchSection configures the search API and the evidence vocabulary.
type SearchSection struct {
	Endpoint  string  `yaml:"endpoint,omitempty"`
	Timeout   string  `yaml:"timeout,omitempty"`
	RateLimit float64 `yaml:"rateLimit,omitempty"`

	// The evidence vocabulary is inlined so debunkTerms etc. sit directly
	// under search:.
	evidence.Rules `yaml:",inline"`
}

// FetchSection configures page retrieval.
type FetchSection struct {
	Timeout     string `yaml:"timeout,omitempty"`
	Proxy       string `yaml:"proxy,omitempty"`
	UserAgent   string `yaml:"userAgent,omitempty"`
	MaxBodySize int64  `yaml:"maxBodySize,omitempty"`
	MaxLength   int    `yaml:"maxLength,omitempty"`
}

// ClassifierSection configures the classifier strategy.
type ClassifierSection struct {
	ModelDir string `yaml:"modelDir,omitempty"`
}

// ServerSection configures the HTTP service.
type ServerSection struct {
	Listen         string   `yaml:"listen,omitempty"`
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty"`
}

// HistorySection configures the analysis history store.
type HistorySection struct {
	// Enabled is a pointer so an explicit false can be told apart from unset.
	Enabled *bool  `yaml:"enabled,omitempty"`
	Dir     string `yaml:"dir,omitempty"`
}

// Apply overlays every value set in f onto cfg.
func (f *File) Apply(cfg *Config) error {
	if f.Strategy != "" {
		cfg.Strategy = f.Strategy
	}

	if f.Search.Endpoint != "" {
		cfg.SearchEndpoint = f.Search.Endpoint
	}
	if err := applyDuration(f.Search.Timeout, &cfg.SearchTimeout, "search.timeout"); err != nil {
		return err
	}
	if f.Search.RateLimit != 0 {
		cfg.SearchRateLimit = f.Search.RateLimit
	}
	cfg.Rules = f.Search.Rules.Merge(cfg.Rules)

	if err := applyDuration(f.Fetch.Timeout, &cfg.FetchTimeout, "fetch.timeout"); err != nil {
		return err
	}
	if f.Fetch.Proxy != "" {
		cfg.FetchProxy = f.Fetch.Proxy
	}
	if f.Fetch.UserAgent != "" {
		cfg.UserAgent = f.Fetch.UserAgent
	}
	if f.Fetch.MaxBodySize != 0 {
		cfg.MaxBodySize = f.Fetch.MaxBodySize
	}
	if f.Fetch.MaxLength != 0 {
		cfg.MaxTextLength = f.Fetch.MaxLength
	}

	if f.Classifier.ModelDir != "" {
		cfg.ModelDir = f.Classifier.ModelDir
	}

	if f.Server.Listen != "" {
		cfg.ListenAddress = f.Server.Listen
	}
	if len(f.Server.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = f.Server.AllowedOrigins
	}

	if f.History.Enabled != nil {
		cfg.SaveHistory = *f.History.Enabled
	}
	if f.History.Dir != "" {
		cfg.DBDir = f.History.Dir
	}
	return nil
}

func applyDuration(value string, dst *time.Duration, key string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDuration, key, err)
	}
	*dst = d
	return nil
}
