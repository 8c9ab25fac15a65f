package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/veritas/internal/model"
	"github.com/nao1215/veritas/internal/normalize"
)

const (
	// SummaryTooShort is returned for text under the minimum length.
	SummaryTooShort = "Content is too short."

	// SummaryUnsupportedType is returned for an unknown content type.
	SummaryUnsupportedType = "Unsupported content type."

	// SummaryFetchFailed is returned when link content cannot be retrieved.
	SummaryFetchFailed = "Error: Could not retrieve content from the URL."
)

// errNoFetcher is reported for link requests on an analyzer without a fetcher.
var errNoFetcher = errors.New("link fetching is not configured")

// Strategy produces a verdict for normalized text.
type Strategy interface {
	// Name identifies the strategy on results and in logs.
	Name() string

	// Analyze must always return a result; failures are expressed as
	// error verdicts rather than Go errors.
	Analyze(ctx context.Context, text string) model.AnalysisResult
}

// Fetcher retrieves the visible text of a web page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Recorder stores finished analyses.
type Recorder interface {
	SaveResult(ctx context.Context, requestID string, req model.AnalysisRequest, res model.AnalysisResult) error
}

// Analyzer validates requests and dispatches them to one strategy.
type Analyzer struct {
	strategy    Strategy
	fetcher     Fetcher
	recorder    Recorder
	logger      *slog.Logger
	maxLength   int
	concurrency int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithFetcher sets the collaborator used for link requests.
func WithFetcher(f Fetcher) Option {
	return func(a *Analyzer) {
		a.fetcher = f
	}
}

// WithRecorder enables history recording.
func WithRecorder(r Recorder) Option {
	return func(a *Analyzer) {
		a.recorder = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMaxLength sets the rune limit applied to analysis text.
func WithMaxLength(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxLength = n
		}
	}
}

// WithConcurrency sets the number of requests AnalyzeBatch runs at once.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// New creates an Analyzer dispatching to strategy.
func New(strategy Strategy, opts ...Option) *Analyzer {
	a := &Analyzer{
		strategy:    strategy,
		logger:      slog.Default(),
		maxLength:   normalize.DefaultMaxLength,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// StrategyName returns the name of the active strategy.
func (a *Analyzer) StrategyName() string {
	if a.strategy == nil {
		return ""
	}
	return a.strategy.Name()
}

// Analyze runs req through the gate, the strategy and the resolver.
func (a *Analyzer) Analyze(ctx context.Context, req model.AnalysisRequest) model.AnalysisResult {
	requestID := RequestIDFromContext(ctx)
	logger := a.logger.With("request_id", requestID, "type", string(req.Type))

	var result model.AnalysisResult
	text, rejected, ok := a.gate(ctx, req)
	if ok {
		result = a.dispatch(ctx, text).WithStrategy(a.StrategyName())
	} else {
		result = rejected
	}
	result = resolve(result)

	logger.Info("analysis completed",
		"verdict", result.Verdict.String(),
		"confidence", result.Confidence.String(),
		"strategy", result.Strategy,
	)

	a.record(ctx, requestID, req, result)
	return result
}

// gate returns the text to analyze, or a rejection result when ok is false.
func (a *Analyzer) gate(ctx context.Context, req model.AnalysisRequest) (text string, rejected model.AnalysisResult, ok bool) {
	if !req.Type.Valid() {
		return "", model.NewErrorResult(model.VerdictInputError, SummaryUnsupportedType, nil), false
	}

	raw := req.Content
	if req.Type == model.ContentTypeLink {
		if strings.TrimSpace(raw) == "" {
			return "", model.NewErrorResult(model.VerdictInputError, SummaryTooShort, nil), false
		}
		fetched, err := a.fetch(ctx, raw)
		if err != nil {
			a.logger.Warn("failed to fetch link content", "error", err)
			return "", model.NewErrorResult(model.VerdictContentError, SummaryFetchFailed, err), false
		}
		raw = fetched
	}

	// Length is measured on the trimmed input, before whitespace runs collapse.
	if !normalize.LongEnough(raw) {
		return "", model.NewErrorResult(model.VerdictInputError, SummaryTooShort, nil), false
	}
	return normalize.Text(raw, a.maxLength), model.AnalysisResult{}, true
}

func (a *Analyzer) fetch(ctx context.Context, url string) (string, error) {
	if a.fetcher == nil {
		return "", errNoFetcher
	}
	return a.fetcher.Fetch(ctx, url)
}

// dispatch calls the strategy, converting a panic or a missing strategy
// into an analysis error.
func (a *Analyzer) dispatch(ctx context.Context, text string) (result model.AnalysisResult) {
	if a.strategy == nil {
		return model.NewErrorResult(model.VerdictConfigurationError, defaultSummaries[model.VerdictConfigurationError], errors.New("no strategy configured"))
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("strategy panicked", "strategy", a.strategy.Name(), "panic", r)
			result = model.NewErrorResult(model.VerdictAnalysisError, defaultSummaries[model.VerdictAnalysisError], fmt.Errorf("strategy panic: %v", r))
		}
	}()
	return a.strategy.Analyze(ctx, text)
}

func (a *Analyzer) record(ctx context.Context, requestID string, req model.AnalysisRequest, res model.AnalysisResult) {
	if a.recorder == nil {
		return
	}
	// Recording must not be cut short by a client disconnect.
	if err := a.recorder.SaveResult(context.WithoutCancel(ctx), requestID, req, res); err != nil {
		a.logger.Warn("failed to record analysis", "request_id", requestID, "error", err)
	}
}
