package model

import "encoding/json"

// AnalysisResult is the sole output of an analysis.
// It is a value type: every strategy builds a fresh one and helpers such as
// WithConfidence return copies instead of changing the receiver.
type AnalysisResult struct {
	// Verdict is one value of the closed verdict set.
	Verdict Verdict

	// Confidence is the percentage attached by the strategy or the resolver.
	Confidence Confidence

	// Summary is a human-readable explanation of the verdict.
	Summary string

	// Error carries the underlying failure for error verdicts.
	Error string

	// Strategy names the strategy that produced the verdict.
	// Empty when the request was rejected before dispatch.
	Strategy string
}

// NewResult returns a result without confidence.
func NewResult(verdict Verdict, summary string) AnalysisResult {
	return AnalysisResult{Verdict: verdict, Summary: summary}
}

// NewErrorResult returns an error verdict with 0% confidence.
// err may be nil when the summary says everything.
func NewErrorResult(verdict Verdict, summary string, err error) AnalysisResult {
	r := AnalysisResult{
		Verdict:    verdict,
		Confidence: FixedConfidence(0),
		Summary:    summary,
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// WithConfidence returns a copy of r carrying c.
func (r AnalysisResult) WithConfidence(c Confidence) AnalysisResult {
	r.Confidence = c
	return r
}

// WithSummary returns a copy of r carrying summary.
func (r AnalysisResult) WithSummary(summary string) AnalysisResult {
	r.Summary = summary
	return r
}

// WithStrategy returns a copy of r stamped with the strategy name.
func (r AnalysisResult) WithStrategy(name string) AnalysisResult {
	r.Strategy = name
	return r
}

// HTTPStatus returns the status code for this result's verdict.
func (r AnalysisResult) HTTPStatus() int {
	return r.Verdict.HTTPStatus()
}

// resultJSON is the wire shape of AnalysisResult.
type resultJSON struct {
	Verdict         Verdict    `json:"verdict"`
	Confidence      Confidence `json:"confidence"`
	ConfidenceBasis string     `json:"confidence_basis,omitempty"`
	Summary         string     `json:"summary"`
	Error           string     `json:"error,omitempty"`
	Strategy        string     `json:"strategy,omitempty"`
}

// MarshalJSON encodes the result as
// {"verdict", "confidence": "<n>%", "confidence_basis", "summary", "error"?, "strategy"?}.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Verdict:         r.Verdict,
		Confidence:      r.Confidence,
		ConfidenceBasis: r.Confidence.Basis.String(),
		Summary:         r.Summary,
		Error:           r.Error,
		Strategy:        r.Strategy,
	})
}

// UnmarshalJSON decodes the wire shape produced by MarshalJSON.
func (r *AnalysisResult) UnmarshalJSON(data []byte) error {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Verdict = raw.Verdict
	r.Confidence = raw.Confidence
	r.Confidence.Basis = ParseConfidenceBasis(raw.ConfidenceBasis)
	r.Summary = raw.Summary
	r.Error = raw.Error
	r.Strategy = raw.Strategy
	return nil
}
