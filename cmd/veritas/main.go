// Package main provides the entry point for the Veritas CLI.
//
// Veritas assigns a truthfulness verdict to a short claim or to the text of
// a web page, either by searching for fact-check evidence or with a trained
// text classifier.
//
// Usage:
//
//	veritas serve
//	veritas check "claim text"
//	veritas check --link https://example.com/article
//
// See --help for all available options.
package main

func main() {
	Execute()
}
