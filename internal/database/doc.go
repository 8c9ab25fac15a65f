// Package database provides SQLite-based storage for Veritas.
//
// AnalysisDB keeps one row per finished analysis: the request, a SHA3-256
// digest of its content, the verdict with its confidence, and a timestamp.
// The server and the check command write to it; the history command reads
// from it.
//
// SQLite is used through modernc.org/sqlite, a CGO-free driver, so the
// history file needs no external service and the binary cross-compiles.
// WAL mode lets the history command read while the server writes.
package database
