// Package analyzer turns an analysis request into exactly one result.
//
// An Analyzer owns the request path shared by every strategy:
//
//   - the input gate fetches link content, normalizes the text and rejects
//     input that is too short, before any strategy runs;
//   - the configured strategy produces a verdict for the text;
//   - the resolver guarantees the result schema: a verdict from the closed
//     set, a non-empty summary and a confidence, filling the confidence from
//     a fixed per-verdict table when the strategy left it unset.
//
// A strategy panic is recovered into an Analysis Error result. Every result
// can optionally be recorded to a history store; recording failures are
// logged and never change the result.
//
// AnalyzeBatch runs many requests with bounded concurrency.
package analyzer
