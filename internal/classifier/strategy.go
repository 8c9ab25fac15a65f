package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/nao1215/veritas/internal/model"
)

const (
	// StrategyName is reported on every result produced by Strategy.
	StrategyName = "classifier"

	// FallbackConfidence is used when the classifier exposes no margin.
	FallbackConfidence = 90

	// SummaryNotLoaded is returned when the artifacts are unavailable.
	SummaryNotLoaded = "Model artifacts are not loaded. Train the model and export vectorizer.json and model.json."

	// SummaryFake is returned for text classified as fake.
	SummaryFake = "The content matches patterns commonly found in known fake news articles."

	// SummaryReal is returned for text classified as real.
	SummaryReal = "The content is stylistically similar to articles from reliable sources. Cross-checking with trusted news outlets is still recommended."

	// SummaryFailed is returned when the model cannot score the text.
	SummaryFailed = "The model could not analyze this content."
)

// errNotLoaded is reported when no load error was recorded.
var errNotLoaded = errors.New("model artifacts were not loaded")

// Strategy assigns verdicts with a trained text classifier.
type Strategy struct {
	artifacts *Artifacts
	loadErr   error
	logger    *slog.Logger
}

// Option configures a Strategy.
type Option func(*Strategy)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Strategy) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStrategy creates a Strategy over artifacts. loadErr is the error from
// LoadArtifacts, if any; it is reported in configuration error results.
func NewStrategy(artifacts *Artifacts, loadErr error, opts ...Option) *Strategy {
	s := &Strategy{
		artifacts: artifacts,
		loadErr:   loadErr,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns "classifier".
func (s *Strategy) Name() string {
	return StrategyName
}

// Configured reports whether both artifacts are available.
func (s *Strategy) Configured() bool {
	return s.artifacts != nil && s.artifacts.Vectorizer != nil && s.artifacts.Classifier != nil
}

// Analyze classifies text.
func (s *Strategy) Analyze(_ context.Context, text string) model.AnalysisResult {
	if !s.Configured() {
		err := s.loadErr
		if err == nil {
			err = errNotLoaded
		}
		return model.NewErrorResult(model.VerdictConfigurationError, SummaryNotLoaded, err)
	}

	out, err := s.classify(text)
	if err != nil {
		s.logger.Error("classification failed", "error", err)
		return model.NewErrorResult(model.VerdictAnalysisError, SummaryFailed, err)
	}

	var result model.AnalysisResult
	switch out.Label {
	case model.LabelFake:
		result = model.NewResult(model.VerdictMisinformation, SummaryFake)
	case model.LabelReal:
		result = model.NewResult(model.VerdictLikelyFactual, SummaryReal)
	default:
		return model.NewErrorResult(model.VerdictAnalysisError, SummaryFailed,
			fmt.Errorf("unexpected label %q", out.Label))
	}

	if out.HasMargin {
		return result.WithConfidence(model.ComputedConfidence(MarginConfidence(out.Margin)))
	}
	return result.WithConfidence(model.FixedConfidence(FallbackConfidence))
}

// classify runs the transform and predict steps, converting a panic in
// either into an error.
func (s *Strategy) classify(text string) (out model.ClassifierOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier panic: %v", r)
		}
	}()

	vec, err := s.artifacts.Vectorizer.Transform(text)
	if err != nil {
		return out, fmt.Errorf("transform: %w", err)
	}

	label, err := s.artifacts.Classifier.Predict(vec)
	if err != nil {
		return out, fmt.Errorf("predict: %w", err)
	}
	out.Label = label

	if scorer, ok := s.artifacts.Classifier.(MarginScorer); ok {
		margin, err := scorer.DecisionMargin(vec)
		if err != nil {
			return out, fmt.Errorf("decision margin: %w", err)
		}
		out.Margin = margin
		out.HasMargin = true
	}
	return out, nil
}

// MarginConfidence maps a decision margin to round(100 * sigmoid(|margin|)).
func MarginConfidence(margin float64) int {
	if math.IsNaN(margin) {
		return 50
	}
	sig := 1 / (1 + math.Exp(-math.Abs(margin)))
	return int(math.Round(100 * sig))
}
