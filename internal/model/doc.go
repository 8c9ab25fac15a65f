// Package model defines the data structures shared across veritas.
//
// This package contains the following main types:
//   - AnalysisRequest: What a caller asks to be analyzed (typed text or a link)
//   - Verdict: The closed set of outcomes an analysis can produce
//   - Confidence: A percentage together with how it was obtained
//   - AnalysisResult: The single output of one analysis
//   - SearchResult and ClassifierOutput: Read-only signals from collaborators
//
// Models live in their own package so that the strategies, the analyzer, the
// HTTP server and the history store can share them without import cycles.
package model
