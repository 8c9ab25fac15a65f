package search

import "strings"

// quote wraps the claim as an exact phrase. Embedded double quotes would
// end the phrase early, so they are dropped.
func quote(claim string) string {
	return `"` + strings.ReplaceAll(strings.TrimSpace(claim), `"`, "") + `"`
}

// DebunkQuery returns `"<claim>" fact check OR hoax OR ...` for the given terms.
func DebunkQuery(claim string, terms []string) string {
	q := quote(claim)
	if len(terms) == 0 {
		return q
	}
	return q + " " + strings.Join(terms, " OR ")
}

// SiteQuery returns `"<claim>" site:a OR site:b ...` for the given sites.
func SiteQuery(claim string, sites []string) string {
	q := quote(claim)
	if len(sites) == 0 {
		return q
	}
	parts := make([]string, 0, len(sites))
	for _, s := range sites {
		parts = append(parts, "site:"+s)
	}
	return q + " " + strings.Join(parts, " OR ")
}
