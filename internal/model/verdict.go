package model

import "net/http"

// Verdict is the outcome of an analysis.
// The set is closed: every analysis yields exactly one of the constants below.
// The string value is what clients see in the "verdict" field.
type Verdict string

const (
	// VerdictMisleading means fact-checking sources dispute the claim.
	VerdictMisleading Verdict = "Misleading"

	// VerdictLikelyFactual means reputable sources report the claim, or the
	// classifier judged the text stylistically similar to reliable articles.
	VerdictLikelyFactual Verdict = "Likely Factual"

	// VerdictUnverifiedClaim means neither debunking nor corroborating
	// evidence was found.
	VerdictUnverifiedClaim Verdict = "Unverified Claim"

	// VerdictMisinformation means the classifier matched the text to known
	// fake news patterns.
	VerdictMisinformation Verdict = "Misinformation"

	// VerdictConfigurationError means a credential or trained artifact the
	// active strategy needs is missing. Operators can fix it.
	VerdictConfigurationError Verdict = "Configuration Error"

	// VerdictContentError means the linked page could not be retrieved.
	VerdictContentError Verdict = "Content Error"

	// VerdictInputError means the request was unusable (too short, unknown type).
	VerdictInputError Verdict = "Input Error"

	// VerdictAnalysisError means a strategy failed unexpectedly.
	VerdictAnalysisError Verdict = "Analysis Error"
)

// allVerdicts lists every verdict in a stable order.
var allVerdicts = []Verdict{
	VerdictMisleading,
	VerdictLikelyFactual,
	VerdictUnverifiedClaim,
	VerdictMisinformation,
	VerdictConfigurationError,
	VerdictContentError,
	VerdictInputError,
	VerdictAnalysisError,
}

// AllVerdicts returns a copy of the closed verdict set.
func AllVerdicts() []Verdict {
	out := make([]Verdict, len(allVerdicts))
	copy(out, allVerdicts)
	return out
}

// String returns the wire representation of the verdict.
func (v Verdict) String() string {
	return string(v)
}

// Valid reports whether v belongs to the closed verdict set.
func (v Verdict) Valid() bool {
	for _, known := range allVerdicts {
		if v == known {
			return true
		}
	}
	return false
}

// IsError reports whether v means "could not determine" rather than a
// substantive judgement about the content.
func (v Verdict) IsError() bool {
	switch v {
	case VerdictConfigurationError, VerdictContentError, VerdictInputError, VerdictAnalysisError:
		return true
	default:
		return false
	}
}

// HTTPStatus returns the status code the HTTP surface answers with.
// Client-side problems map to 400, server-side problems to 500, and every
// substantive verdict to 200.
func (v Verdict) HTTPStatus() int {
	switch v {
	case VerdictContentError, VerdictInputError:
		return http.StatusBadRequest
	case VerdictConfigurationError, VerdictAnalysisError:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

// ParseVerdict converts a wire string back into a Verdict.
// The second return value is false when s is not part of the closed set.
func ParseVerdict(s string) (Verdict, bool) {
	v := Verdict(s)
	return v, v.Valid()
}
