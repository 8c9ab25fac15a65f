package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// TestAnalysisResultMarshalJSON verifies the wire shape of results.
func TestAnalysisResultMarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("confidence is a percentage string", func(t *testing.T) {
		t.Parallel()

		r := NewResult(VerdictMisleading, "disputed").WithConfidence(FixedConfidence(95))
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		want := `{"verdict":"Misleading","confidence":"95%","confidence_basis":"fixed","summary":"disputed"}`
		if string(data) != want {
			t.Errorf("got %s, want %s", data, want)
		}
	})

	t.Run("error and strategy are included when set", func(t *testing.T) {
		t.Parallel()

		r := NewErrorResult(VerdictAnalysisError, "failed", errors.New("boom")).WithStrategy("classifier")
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		out := string(data)
		for _, want := range []string{`"confidence":"0%"`, `"error":"boom"`, `"strategy":"classifier"`} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %s in %s", want, out)
			}
		}
	})

	t.Run("computed basis survives a decode", func(t *testing.T) {
		t.Parallel()

		r := NewResult(VerdictMisinformation, "fake").WithConfidence(ComputedConfidence(95))
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		var decoded AnalysisResult
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if decoded != r {
			t.Errorf("decoded %+v, want %+v", decoded, r)
		}
	})
}

// TestAnalysisResultCopies verifies that the With helpers never modify the receiver.
func TestAnalysisResultCopies(t *testing.T) {
	t.Parallel()

	original := NewResult(VerdictUnverifiedClaim, "unknown")
	updated := original.WithConfidence(FixedConfidence(50)).WithStrategy("search").WithSummary("changed")

	if original.Confidence.IsSet() {
		t.Error("original result gained a confidence")
	}
	if original.Strategy != "" || original.Summary != "unknown" {
		t.Errorf("original result was modified: %+v", original)
	}
	if updated.Confidence.Percent != 50 || updated.Strategy != "search" || updated.Summary != "changed" {
		t.Errorf("unexpected updated result: %+v", updated)
	}
}

// TestConfidence tests clamping and parsing.
func TestConfidence(t *testing.T) {
	t.Parallel()

	t.Run("values are clamped", func(t *testing.T) {
		t.Parallel()
		if c := FixedConfidence(150); c.Percent != 100 {
			t.Errorf("expected 100, got %d", c.Percent)
		}
		if c := ComputedConfidence(-3); c.Percent != 0 {
			t.Errorf("expected 0, got %d", c.Percent)
		}
	})

	t.Run("unmarshal accepts string and number", func(t *testing.T) {
		t.Parallel()

		var c Confidence
		if err := json.Unmarshal([]byte(`"92%"`), &c); err != nil || c.Percent != 92 {
			t.Errorf("got %d, %v", c.Percent, err)
		}
		if err := json.Unmarshal([]byte(`73`), &c); err != nil || c.Percent != 73 {
			t.Errorf("got %d, %v", c.Percent, err)
		}
		if err := json.Unmarshal([]byte(`"high"`), &c); err == nil {
			t.Error("expected error for non-numeric confidence")
		}
	})

	t.Run("zero value is unset", func(t *testing.T) {
		t.Parallel()
		var c Confidence
		if c.IsSet() {
			t.Error("zero confidence should be unset")
		}
		if c.Basis.String() != "" {
			t.Errorf("expected empty basis name, got %q", c.Basis.String())
		}
	})
}
