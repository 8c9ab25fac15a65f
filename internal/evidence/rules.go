package evidence

import "slices"

// Rules holds the vocabulary used by the default passes.
type Rules struct {
	// DebunkTerms are OR'ed with the claim in the debunk query.
	DebunkTerms []string `yaml:"debunkTerms,omitempty"`

	// DebunkKeywords mark a result as disputing the claim.
	DebunkKeywords []string `yaml:"debunkKeywords,omitempty"`

	// DebunkWindow is how many top debunk results are inspected.
	DebunkWindow int `yaml:"debunkWindow,omitempty"`

	// CorroborationSites restrict the corroboration query.
	CorroborationSites []string `yaml:"corroborationSites,omitempty"`
}

// DefaultRules returns the built-in vocabulary.
func DefaultRules() Rules {
	return Rules{
		DebunkTerms:    []string{"fact check", "hoax", "false", "debunked"},
		DebunkKeywords: []string{"false", "hoax", "misleading", "incorrect", "not true"},
		DebunkWindow:   3,
		CorroborationSites: []string{
			"bbc.com",
			"reuters.com",
			"timesofindia.indiatimes.com",
			"thehindu.com",
		},
	}
}

// Merge returns r with every empty field taken from base.
func (r Rules) Merge(base Rules) Rules {
	out := Rules{
		DebunkTerms:        slices.Clone(r.DebunkTerms),
		DebunkKeywords:     slices.Clone(r.DebunkKeywords),
		DebunkWindow:       r.DebunkWindow,
		CorroborationSites: slices.Clone(r.CorroborationSites),
	}
	if len(out.DebunkTerms) == 0 {
		out.DebunkTerms = slices.Clone(base.DebunkTerms)
	}
	if len(out.DebunkKeywords) == 0 {
		out.DebunkKeywords = slices.Clone(base.DebunkKeywords)
	}
	if out.DebunkWindow <= 0 {
		out.DebunkWindow = base.DebunkWindow
	}
	if len(out.CorroborationSites) == 0 {
		out.CorroborationSites = slices.Clone(base.CorroborationSites)
	}
	return out
}
