// Package fetch retrieves a web page and extracts its visible text.
//
// The Fetcher downloads a URL with a browser-like User-Agent, decodes the
// body to UTF-8, drops script and style content, and returns whitespace
// normalized text capped at a fixed number of runes. Any failure is returned
// as an error wrapping ErrFetch so callers can map it to a content error
// without inspecting transport details.
//
// Outbound traffic may be routed through a SOCKS5 proxy; see NewHTTPClient.
package fetch
