// Package report renders analysis results for the command line.
//
// This package contains writers for different output formats:
//   - SimpleWriter: aligned plain text for terminal display
//   - JSONWriter: structured JSON for scripts and other tools
//   - MarkdownWriter: a shareable Markdown report with a verdict chart
//
// Writers implement the Writer interface and can be combined with
// MultiWriter.
package report
