package analyzer

import (
	"fmt"

	"github.com/nao1215/veritas/internal/model"
)

// fixedConfidence is applied when a strategy leaves confidence unset.
var fixedConfidence = map[model.Verdict]int{
	model.VerdictMisleading:         95,
	model.VerdictLikelyFactual:      92,
	model.VerdictUnverifiedClaim:    50,
	model.VerdictMisinformation:     50,
	model.VerdictConfigurationError: 0,
	model.VerdictContentError:       0,
	model.VerdictInputError:         0,
	model.VerdictAnalysisError:      0,
}

// defaultSummaries fill an empty summary.
var defaultSummaries = map[model.Verdict]string{
	model.VerdictMisleading:         "Sources indicate this claim is false or misleading.",
	model.VerdictLikelyFactual:      "The claim appears to be supported by reliable sources.",
	model.VerdictUnverifiedClaim:    "The claim could not be verified. Please proceed with caution.",
	model.VerdictMisinformation:     "The content resembles known misinformation.",
	model.VerdictConfigurationError: "The service is not configured correctly.",
	model.VerdictContentError:       SummaryFetchFailed,
	model.VerdictInputError:         "The request is invalid.",
	model.VerdictAnalysisError:      "The content could not be analyzed.",
}

// FixedConfidence returns the table confidence for v.
func FixedConfidence(v model.Verdict) model.Confidence {
	return model.FixedConfidence(fixedConfidence[v])
}

// resolve enforces the result schema without re-interpreting the verdict.
func resolve(r model.AnalysisResult) model.AnalysisResult {
	if !r.Verdict.Valid() {
		out := model.NewErrorResult(model.VerdictAnalysisError, defaultSummaries[model.VerdictAnalysisError],
			fmt.Errorf("strategy returned unknown verdict %q", r.Verdict))
		return out.WithStrategy(r.Strategy)
	}
	if r.Summary == "" {
		r = r.WithSummary(defaultSummaries[r.Verdict])
	}
	if r.Verdict.IsError() {
		return r.WithConfidence(model.FixedConfidence(0))
	}
	if !r.Confidence.IsSet() {
		r = r.WithConfidence(FixedConfidence(r.Verdict))
	}
	return r
}
