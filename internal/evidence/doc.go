// Package evidence implements the search-based verdict strategy.
//
// The strategy runs an ordered table of passes against a search provider.
// Each pass builds one query from the claim, interprets the returned results
// and either produces a verdict or yields no signal. The first pass with a
// signal decides the verdict; when every pass is silent the claim is
// reported as unverified.
//
// The default table has two passes:
//
//  1. debunk: the claim searched together with fact-check vocabulary. If one
//     of the top results mentions a debunking keyword the claim is Misleading.
//  2. corroboration: the claim restricted to reputable news sites. Any hit
//     makes the claim Likely Factual.
//
// A pass whose search call fails is logged and treated as silent, so a
// transient API error degrades to a weaker verdict instead of failing the
// request. Queries are never retried.
//
// Confidence is intentionally left unset; the analyzer assigns it from the
// verdict.
package evidence
