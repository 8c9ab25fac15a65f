// Package search queries a web search API for evidence about a claim.
//
// The Provider interface is the only thing the evidence strategy depends on.
// SerperClient implements it against the Serper Google Search API, sending
// the query as JSON with the key in the X-API-KEY header and reading the
// "organic" result list. Requests are paced by a token bucket limiter so a
// burst of analyses cannot exhaust the API quota.
//
// The query helpers build the two query shapes used by the evidence passes:
// an exact-phrase claim joined with OR'ed debunk terms, and an exact-phrase
// claim restricted to a list of sites.
package search
