package evidence

import (
	"fmt"
	"strings"

	"github.com/nao1215/veritas/internal/model"
	"github.com/nao1215/veritas/internal/search"
)

// Interpreter inspects search results and returns the result that carries a
// signal, if any.
type Interpreter func(results []model.SearchResult) (model.SearchResult, bool)

// Pass is one row of the evidence table.
type Pass struct {
	// Name identifies the pass in logs.
	Name string

	// Query builds the search query for a claim.
	Query func(claim string) string

	// Interpret decides whether the results carry a signal.
	Interpret Interpreter

	// Verdict is returned when Interpret reports a signal.
	Verdict model.Verdict

	// Summary renders the explanation for the signalling result.
	Summary func(hit model.SearchResult) string
}

// FirstKeywordMatch returns an Interpreter that scans the first window
// results and signals on the first one whose lower-cased title or snippet
// contains any of keywords.
func FirstKeywordMatch(keywords []string, window int) Interpreter {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}

	return func(results []model.SearchResult) (model.SearchResult, bool) {
		if window > 0 && len(results) > window {
			results = results[:window]
		}
		for _, r := range results {
			title := strings.ToLower(r.Title)
			snippet := strings.ToLower(r.Snippet)
			for _, k := range lowered {
				if strings.Contains(snippet, k) || strings.Contains(title, k) {
					return r, true
				}
			}
		}
		return model.SearchResult{}, false
	}
}

// FirstResult returns an Interpreter that signals on any non-empty result list.
func FirstResult() Interpreter {
	return func(results []model.SearchResult) (model.SearchResult, bool) {
		if len(results) == 0 {
			return model.SearchResult{}, false
		}
		return results[0], true
	}
}

// DebunkPass builds the pass that looks for fact-check articles disputing the claim.
func DebunkPass(rules Rules) Pass {
	terms := rules.DebunkTerms
	return Pass{
		Name:      "debunk",
		Query:     func(claim string) string { return search.DebunkQuery(claim, terms) },
		Interpret: FirstKeywordMatch(rules.DebunkKeywords, rules.DebunkWindow),
		Verdict:   model.VerdictMisleading,
		Summary: func(hit model.SearchResult) string {
			return fmt.Sprintf("Fact-checking sources indicate this claim is false or misleading. A top result from '%s' disputes the claim.", hit.Link)
		},
	}
}

// CorroborationPass builds the pass that looks for reputable news coverage.
func CorroborationPass(rules Rules) Pass {
	sites := rules.CorroborationSites
	return Pass{
		Name:      "corroboration",
		Query:     func(claim string) string { return search.SiteQuery(claim, sites) },
		Interpret: FirstResult(),
		Verdict:   model.VerdictLikelyFactual,
		Summary: func(hit model.SearchResult) string {
			return fmt.Sprintf("The claim is supported by reports from reputable news sources, including '%s'.", hit.Link)
		},
	}
}

// DefaultPasses returns the debunk and corroboration passes, in that order.
func DefaultPasses(rules Rules) []Pass {
	rules = rules.Merge(DefaultRules())
	return []Pass{
		DebunkPass(rules),
		CorroborationPass(rules),
	}
}
