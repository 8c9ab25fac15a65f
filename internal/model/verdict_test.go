package model

import (
	"net/http"
	"testing"
)

// TestVerdictHTTPStatus verifies the status contract of the HTTP surface.
func TestVerdictHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verdict Verdict
		want    int
	}{
		{VerdictMisleading, http.StatusOK},
		{VerdictLikelyFactual, http.StatusOK},
		{VerdictUnverifiedClaim, http.StatusOK},
		{VerdictMisinformation, http.StatusOK},
		{VerdictContentError, http.StatusBadRequest},
		{VerdictInputError, http.StatusBadRequest},
		{VerdictConfigurationError, http.StatusInternalServerError},
		{VerdictAnalysisError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.verdict.String(), func(t *testing.T) {
			t.Parallel()
			if got := tt.verdict.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestVerdictValid verifies that the verdict set is closed.
func TestVerdictValid(t *testing.T) {
	t.Parallel()

	t.Run("every listed verdict is valid", func(t *testing.T) {
		t.Parallel()
		all := AllVerdicts()
		if len(all) != 8 {
			t.Fatalf("expected 8 verdicts, got %d", len(all))
		}
		for _, v := range all {
			if !v.Valid() {
				t.Errorf("expected %q to be valid", v)
			}
		}
	})

	t.Run("unknown verdict is invalid", func(t *testing.T) {
		t.Parallel()
		if Verdict("Probably True").Valid() {
			t.Error("expected unknown verdict to be invalid")
		}
		if _, ok := ParseVerdict(""); ok {
			t.Error("expected empty verdict to be rejected")
		}
	})

	t.Run("AllVerdicts returns a copy", func(t *testing.T) {
		t.Parallel()
		all := AllVerdicts()
		all[0] = "tampered"
		if AllVerdicts()[0] != VerdictMisleading {
			t.Error("modifying the returned slice changed the verdict set")
		}
	})
}

// TestVerdictIsError verifies the split between error classes and substantive verdicts.
func TestVerdictIsError(t *testing.T) {
	t.Parallel()

	errorVerdicts := map[Verdict]bool{
		VerdictConfigurationError: true,
		VerdictContentError:       true,
		VerdictInputError:         true,
		VerdictAnalysisError:      true,
	}

	for _, v := range AllVerdicts() {
		if got := v.IsError(); got != errorVerdicts[v] {
			t.Errorf("%q: IsError() = %v, want %v", v, got, errorVerdicts[v])
		}
	}
}

// TestParseLabel tests label parsing.
func TestParseLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Label
		wantOK bool
	}{
		{"FAKE", LabelFake, true},
		{"real", LabelReal, true},
		{" Fake ", LabelFake, true},
		{"unknown", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseLabel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLabel(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
