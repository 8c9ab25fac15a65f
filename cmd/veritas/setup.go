package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/veritas/internal/analyzer"
	"github.com/nao1215/veritas/internal/classifier"
	"github.com/nao1215/veritas/internal/config"
	"github.com/nao1215/veritas/internal/database"
	"github.com/nao1215/veritas/internal/evidence"
	"github.com/nao1215/veritas/internal/fetch"
	"github.com/nao1215/veritas/internal/log"
	"github.com/nao1215/veritas/internal/search"
)

// stringFlag returns the value of a local or inherited flag, or "" when the
// command does not define it.
func stringFlag(cmd *cobra.Command, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	if f := cmd.Root().PersistentFlags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}

// boolFlag is stringFlag for boolean flags.
func boolFlag(cmd *cobra.Command, name string) bool {
	return stringFlag(cmd, name) == "true"
}

// loadConfig builds the configuration from defaults, the .veritas file,
// .env and environment variables, and global flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	// If the user explicitly specified a config file path, error if not found.
	// Otherwise silently use defaults when no file exists.
	cfg.ConfigFilePath = stringFlag(cmd, "config")
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	cfg.ApplyEnv()

	if key := stringFlag(cmd, "api-key"); key != "" {
		cfg.SearchAPIKey = key
	}
	if s := stringFlag(cmd, "strategy"); s != "" {
		cfg.Strategy = strings.ToLower(s)
	}
	cfg.Verbose = boolFlag(cmd, "verbose")
	cfg.JSONLog = boolFlag(cmd, "json-log")

	return cfg, nil
}

// newCLILogger returns the logger for one-shot commands.
func newCLILogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return log.New(w, cfg.Verbose, cfg.JSONLog)
}

// buildStrategy creates the strategy selected by cfg. A missing API key or
// missing model artifacts do not fail here; they surface as Configuration
// Error verdicts on every request.
func buildStrategy(cfg *config.Config, logger *slog.Logger) (analyzer.Strategy, error) {
	switch cfg.Strategy {
	case config.StrategySearch:
		client := search.NewSerperClient(cfg.SearchAPIKey,
			search.WithEndpoint(cfg.SearchEndpoint),
			search.WithHTTPClient(&http.Client{Timeout: cfg.SearchTimeout}),
			search.WithRateLimit(cfg.SearchRateLimit),
			search.WithLogger(logger),
		)
		if !client.Configured() {
			logger.Warn("search API key is not configured; analyses will report a configuration error")
		}
		return evidence.NewStrategy(client,
			evidence.WithRules(cfg.Rules),
			evidence.WithLogger(logger),
		), nil
	case config.StrategyClassifier:
		artifacts, err := classifier.LoadArtifacts(cfg.ModelDir)
		if err != nil {
			logger.Warn("failed to load classifier artifacts", "dir", cfg.ModelDir, "error", err)
		}
		return classifier.NewStrategy(artifacts, err, classifier.WithLogger(logger)), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStrategy, cfg.Strategy)
	}
}

// openHistory opens the history database when history is enabled.
// It returns nil without error when history is disabled.
func openHistory(cfg *config.Config, logger *slog.Logger) (*database.AnalysisDB, error) {
	if !cfg.SaveHistory {
		return nil, nil
	}
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	logger.Debug("history database opened", "path", db.Path())
	return db, nil
}

// buildAnalyzer wires fetcher, strategy and optional recorder into an Analyzer.
func buildAnalyzer(cfg *config.Config, logger *slog.Logger, db *database.AnalysisDB) (*analyzer.Analyzer, error) {
	strategy, err := buildStrategy(cfg, logger)
	if err != nil {
		return nil, err
	}

	httpClient, err := fetch.NewHTTPClient(cfg.FetchTimeout, cfg.FetchProxy)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch client: %w", err)
	}
	fetcher := fetch.NewFetcher(
		fetch.WithHTTPClient(httpClient),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithMaxLength(cfg.MaxTextLength),
	)

	opts := []analyzer.Option{
		analyzer.WithFetcher(fetcher),
		analyzer.WithLogger(logger),
		analyzer.WithMaxLength(cfg.MaxTextLength),
		analyzer.WithConcurrency(cfg.Concurrency),
	}
	if db != nil {
		opts = append(opts, analyzer.WithRecorder(db))
	}
	return analyzer.New(strategy, opts...), nil
}
