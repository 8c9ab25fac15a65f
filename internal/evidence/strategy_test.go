package evidence

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/nao1215/veritas/internal/model"
)

// fakeProvider answers queries by matching the query prefix of each pass.
type fakeProvider struct {
	mu         sync.Mutex
	queries    []string
	configured bool
	debunk     []model.SearchResult
	debunkErr  error
	corrob     []model.SearchResult
	corrobErr  error
}

func (f *fakeProvider) Search(_ context.Context, query string) ([]model.SearchResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if strings.Contains(query, "site:") {
		return f.corrob, f.corrobErr
	}
	return f.debunk, f.debunkErr
}

func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestStrategyAnalyze tests the pass table decisions.
func TestStrategyAnalyze(t *testing.T) {
	t.Parallel()

	const claim = "The city will ban bicycles next year"

	t.Run("debunk keyword in second result is misleading", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{
			configured: true,
			debunk: []model.SearchResult{
				{Title: "City transport plans", Snippet: "council meeting notes", Link: "https://news.example/0"},
				{Title: "Viral post is a HOAX", Snippet: "no such plan", Link: "https://check.example/1"},
				{Title: "Another claim is false", Snippet: "", Link: "https://check.example/2"},
			},
			corrob: []model.SearchResult{{Link: "https://bbc.com/x"}},
		}
		s := NewStrategy(p, WithLogger(quietLogger()))

		got := s.Analyze(context.Background(), claim)
		if got.Verdict != model.VerdictMisleading {
			t.Fatalf("Verdict = %q, want %q", got.Verdict, model.VerdictMisleading)
		}
		if !strings.Contains(got.Summary, "https://check.example/1") {
			t.Errorf("summary should name the matching link, got %q", got.Summary)
		}
		if got.Confidence.IsSet() {
			t.Errorf("strategy must not set confidence, got %v", got.Confidence)
		}
		if p.callCount() != 1 {
			t.Errorf("expected corroboration pass to be skipped, got %d queries", p.callCount())
		}
	})

	t.Run("keyword outside window is ignored", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{
			configured: true,
			debunk: []model.SearchResult{
				{Title: "a"}, {Title: "b"}, {Title: "c"},
				{Title: "d is false", Link: "https://check.example/3"},
			},
		}
		s := NewStrategy(p, WithLogger(quietLogger()))

		got := s.Analyze(context.Background(), claim)
		if got.Verdict != model.VerdictUnverifiedClaim {
			t.Errorf("Verdict = %q, want %q", got.Verdict, model.VerdictUnverifiedClaim)
		}
	})

	t.Run("no debunk signal but corroboration is likely factual", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{
			configured: true,
			corrob: []model.SearchResult{
				{Title: "Report", Link: "https://reuters.com/a"},
				{Title: "Other", Link: "https://bbc.com/b"},
			},
		}
		s := NewStrategy(p, WithLogger(quietLogger()))

		got := s.Analyze(context.Background(), claim)
		if got.Verdict != model.VerdictLikelyFactual {
			t.Fatalf("Verdict = %q, want %q", got.Verdict, model.VerdictLikelyFactual)
		}
		if !strings.Contains(got.Summary, "https://reuters.com/a") {
			t.Errorf("summary should name the first link, got %q", got.Summary)
		}
		if p.callCount() != 2 {
			t.Errorf("expected 2 queries, got %d", p.callCount())
		}
	})

	t.Run("both passes empty is unverified", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{configured: true}
		s := NewStrategy(p, WithLogger(quietLogger()))

		got := s.Analyze(context.Background(), claim)
		if got.Verdict != model.VerdictUnverifiedClaim {
			t.Errorf("Verdict = %q, want %q", got.Verdict, model.VerdictUnverifiedClaim)
		}
		if got.Summary != SummaryUnverified {
			t.Errorf("Summary = %q", got.Summary)
		}
	})

	t.Run("pass errors are treated as no signal", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{
			configured: true,
			debunkErr:  errors.New("connection reset"),
			corrobErr:  errors.New("quota exceeded"),
		}
		s := NewStrategy(p, WithLogger(quietLogger()))

		got := s.Analyze(context.Background(), claim)
		if got.Verdict != model.VerdictUnverifiedClaim {
			t.Errorf("Verdict = %q, want %q", got.Verdict, model.VerdictUnverifiedClaim)
		}
		if p.callCount() != 2 {
			t.Errorf("each query should be attempted exactly once, got %d", p.callCount())
		}
	})

	t.Run("debunk error falls through to corroboration", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{
			configured: true,
			debunkErr:  errors.New("timeout"),
			corrob:     []model.SearchResult{{Link: "https://thehindu.com/z"}},
		}
		s := NewStrategy(p, WithLogger(quietLogger()))

		got := s.Analyze(context.Background(), claim)
		if got.Verdict != model.VerdictLikelyFactual {
			t.Errorf("Verdict = %q, want %q", got.Verdict, model.VerdictLikelyFactual)
		}
	})

	t.Run("unconfigured provider issues no query", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{configured: false}
		s := NewStrategy(p, WithLogger(quietLogger()))

		got := s.Analyze(context.Background(), claim)
		if got.Verdict != model.VerdictConfigurationError {
			t.Errorf("Verdict = %q, want %q", got.Verdict, model.VerdictConfigurationError)
		}
		if got.Confidence.Percent != 0 {
			t.Errorf("Confidence = %v, want 0%%", got.Confidence)
		}
		if p.callCount() != 0 {
			t.Errorf("expected no queries, got %d", p.callCount())
		}
	})

	t.Run("nil provider is a configuration error", func(t *testing.T) {
		t.Parallel()

		s := NewStrategy(nil)
		got := s.Analyze(context.Background(), claim)
		if got.Verdict != model.VerdictConfigurationError {
			t.Errorf("Verdict = %q, want %q", got.Verdict, model.VerdictConfigurationError)
		}
	})

	t.Run("queries use the claim and configured rules", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{configured: true}
		rules := Rules{
			DebunkTerms:        []string{"hoax"},
			CorroborationSites: []string{"apnews.com"},
		}
		s := NewStrategy(p, WithRules(rules), WithLogger(quietLogger()))
		s.Analyze(context.Background(), claim)

		want := []string{
			`"` + claim + `" hoax`,
			`"` + claim + `" site:apnews.com`,
		}
		if len(p.queries) != len(want) {
			t.Fatalf("expected %d queries, got %v", len(want), p.queries)
		}
		for i := range want {
			if p.queries[i] != want[i] {
				t.Errorf("query[%d] = %q, want %q", i, p.queries[i], want[i])
			}
		}
	})
}

// TestStrategyIdempotent verifies that identical inputs and provider
// responses produce identical results.
func TestStrategyIdempotent(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{
		configured: true,
		debunk:     []model.SearchResult{{Title: "This is not true", Link: "https://check.example"}},
	}
	s := NewStrategy(p, WithLogger(quietLogger()))

	first := s.Analyze(context.Background(), "Water boils at 50 degrees")
	second := s.Analyze(context.Background(), "Water boils at 50 degrees")
	if first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}

// TestFirstKeywordMatch tests keyword matching over title and snippet.
func TestFirstKeywordMatch(t *testing.T) {
	t.Parallel()

	interpret := FirstKeywordMatch([]string{"Not True", " hoax "}, 2)

	tests := []struct {
		name     string
		results  []model.SearchResult
		wantOK   bool
		wantLink string
	}{
		{
			name:    "no results",
			results: nil,
			wantOK:  false,
		},
		{
			name:     "match in snippet is case insensitive",
			results:  []model.SearchResult{{Snippet: "That is NOT TRUE at all", Link: "l0"}},
			wantOK:   true,
			wantLink: "l0",
		},
		{
			name:     "match in title",
			results:  []model.SearchResult{{Title: "Viral HOAX debunked", Snippet: "details", Link: "l0"}},
			wantOK:   true,
			wantLink: "l0",
		},
		{
			name: "keyword split across title and snippet does not match",
			results: []model.SearchResult{
				{Title: "Why the rumour is not", Snippet: "true story behind the viral post", Link: "l0"},
			},
			wantOK: false,
		},
		{
			name: "first matching result wins",
			results: []model.SearchResult{
				{Title: "hoax", Link: "l0"},
				{Title: "not true", Link: "l1"},
			},
			wantOK:   true,
			wantLink: "l0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hit, ok := interpret(tt.results)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && hit.Link != tt.wantLink {
				t.Errorf("Link = %q, want %q", hit.Link, tt.wantLink)
			}
		})
	}
}

// TestRulesMerge tests that empty fields fall back to the base rules.
func TestRulesMerge(t *testing.T) {
	t.Parallel()

	base := DefaultRules()
	merged := Rules{DebunkWindow: 5}.Merge(base)

	if merged.DebunkWindow != 5 {
		t.Errorf("DebunkWindow = %d, want 5", merged.DebunkWindow)
	}
	if len(merged.DebunkKeywords) != len(base.DebunkKeywords) {
		t.Errorf("DebunkKeywords not inherited: %v", merged.DebunkKeywords)
	}
	if len(merged.CorroborationSites) != 4 {
		t.Errorf("CorroborationSites = %v", merged.CorroborationSites)
	}
}
