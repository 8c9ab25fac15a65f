package evidence

import (
	"context"
	"log/slog"

	"github.com/nao1215/veritas/internal/model"
	"github.com/nao1215/veritas/internal/search"
)

const (
	// StrategyName is reported on every result produced by Strategy.
	StrategyName = "search"

	// SummaryNotConfigured is returned when no usable search credential exists.
	SummaryNotConfigured = "Search API key is not configured correctly."

	// SummaryUnverified is returned when no pass finds a signal.
	SummaryUnverified = "We could not find sufficient information from fact-checking or major news sources to verify this claim. Please proceed with caution."
)

// Strategy assigns verdicts from web search evidence.
// It is safe for concurrent use when the provider is.
type Strategy struct {
	provider search.Provider
	passes   []Pass
	logger   *slog.Logger
}

// Option configures a Strategy.
type Option func(*Strategy)

// WithRules replaces the default vocabulary.
func WithRules(rules Rules) Option {
	return func(s *Strategy) {
		s.passes = DefaultPasses(rules)
	}
}

// WithPasses replaces the pass table.
func WithPasses(passes ...Pass) Option {
	return func(s *Strategy) {
		s.passes = passes
	}
}

// WithLogger sets the logger used for pass failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Strategy) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStrategy creates a Strategy over provider.
// A nil provider yields a strategy that always reports a configuration error.
func NewStrategy(provider search.Provider, opts ...Option) *Strategy {
	s := &Strategy{
		provider: provider,
		passes:   DefaultPasses(DefaultRules()),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns "search".
func (s *Strategy) Name() string {
	return StrategyName
}

// Configured reports whether the strategy can issue queries.
func (s *Strategy) Configured() bool {
	if s.provider == nil {
		return false
	}
	if c, ok := s.provider.(search.Configurable); ok {
		return c.Configured()
	}
	return true
}

// Analyze runs the pass table against text and returns the first signal.
func (s *Strategy) Analyze(ctx context.Context, text string) model.AnalysisResult {
	if !s.Configured() {
		return model.NewErrorResult(model.VerdictConfigurationError, SummaryNotConfigured, search.ErrNotConfigured)
	}

	for _, p := range s.passes {
		if ctx.Err() != nil {
			break
		}

		results, err := s.provider.Search(ctx, p.Query(text))
		if err != nil {
			s.logger.Warn("evidence pass failed",
				"pass", p.Name,
				"error", err,
			)
			continue
		}

		hit, ok := p.Interpret(results)
		if !ok {
			s.logger.Debug("evidence pass found no signal",
				"pass", p.Name,
				"results", len(results),
			)
			continue
		}

		s.logger.Debug("evidence pass matched",
			"pass", p.Name,
			"link", hit.Link,
		)
		return model.NewResult(p.Verdict, p.Summary(hit))
	}

	return model.NewResult(model.VerdictUnverifiedClaim, SummaryUnverified)
}
