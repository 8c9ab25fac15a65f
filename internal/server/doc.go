// Package server exposes the analyzer over HTTP using gin.
//
// Routes:
//   - GET /          plain-text liveness banner
//   - GET /health    {"status":"ok","strategy":"..."}
//   - POST /analyze  {"type":"text"|"link","content":"..."} -> AnalysisResult
//
// POST /analyze always returns an AnalysisResult body. The status code is
// derived from the verdict: 200 for substantive verdicts, 400 for content
// and input errors, 500 for configuration and analysis errors.
//
// Every response carries an X-Request-ID header. The same ID is attached to
// the request context so analyzer logs and history records can be joined
// with request logs.
package server
