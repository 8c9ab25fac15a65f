// Package log provides slog loggers that mask credentials before they are
// written.
//
// Veritas handles a search provider API key on every request, so the
// SecureHandler masks:
//   - attributes whose key names a credential (api_key, x-api-key, authorization, token, ...)
//   - values that look like credentials (bearer tokens, JWTs, 40-hex Serper keys)
//   - credential query parameters and passwords inside URLs
//
// Masking applies in verbose mode too.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Info("search", "endpoint", endpoint, "x-api-key", key) // key is masked
//
// Servers use NewServerLogger so request logs appear at Info level, with
// JSON output selected by the --json-log flag.
package log
