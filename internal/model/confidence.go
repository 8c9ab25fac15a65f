package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ConfidenceBasis records how a confidence number was obtained.
// The two strategies use different semantics: the evidence search attaches a
// qualitative strength-of-evidence constant, the classifier computes a value
// from its decision margin. Keeping the basis lets readers tell them apart.
type ConfidenceBasis int

const (
	// ConfidenceUnset means no confidence has been attached yet.
	ConfidenceUnset ConfidenceBasis = iota

	// ConfidenceFixed is a constant chosen per verdict, not a statistic.
	ConfidenceFixed

	// ConfidenceComputed is derived from a classifier margin.
	ConfidenceComputed
)

// String returns the wire name of the basis.
func (b ConfidenceBasis) String() string {
	switch b {
	case ConfidenceFixed:
		return "fixed"
	case ConfidenceComputed:
		return "computed"
	default:
		return ""
	}
}

// ParseConfidenceBasis is the inverse of ConfidenceBasis.String.
func ParseConfidenceBasis(s string) ConfidenceBasis {
	switch s {
	case "fixed":
		return ConfidenceFixed
	case "computed":
		return ConfidenceComputed
	default:
		return ConfidenceUnset
	}
}

// Confidence is an integer percentage in [0,100] and its basis.
type Confidence struct {
	Percent int
	Basis   ConfidenceBasis
}

// FixedConfidence returns a constant confidence clamped to [0,100].
func FixedConfidence(percent int) Confidence {
	return Confidence{Percent: clampPercent(percent), Basis: ConfidenceFixed}
}

// ComputedConfidence returns a margin-derived confidence clamped to [0,100].
func ComputedConfidence(percent int) Confidence {
	return Confidence{Percent: clampPercent(percent), Basis: ConfidenceComputed}
}

// IsSet reports whether a confidence has been attached.
func (c Confidence) IsSet() bool {
	return c.Basis != ConfidenceUnset
}

// String formats the confidence the way clients receive it, e.g. "95%".
func (c Confidence) String() string {
	return strconv.Itoa(c.Percent) + "%"
}

// MarshalJSON encodes the confidence as its percentage string.
func (c Confidence) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts "95%" as well as a bare number.
// The basis is not part of this encoding and is left unchanged.
func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid confidence %s", string(data))
		}
		c.Percent = clampPercent(n)
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return fmt.Errorf("invalid confidence %q: %w", s, err)
	}
	c.Percent = clampPercent(n)
	return nil
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
