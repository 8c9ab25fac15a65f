package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// inputColumnWidth is the display width of the input column.
const inputColumnWidth = 44

// SimpleWriter outputs human-readable text for terminal display.
type SimpleWriter struct {
	baseWriter

	// verbose prints summaries and errors under each row.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables per-item summaries.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs items. A single item is printed as a verdict card; several
// items are printed as an aligned table followed by a verdict tally.
func (w *SimpleWriter) Write(items []Item) (int, error) {
	var sb strings.Builder

	if len(items) == 1 {
		w.writeCard(&sb, items[0])
	} else {
		w.writeTable(&sb, items)
		w.writeTally(&sb, items)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeCard writes one result in full.
func (w *SimpleWriter) writeCard(sb *strings.Builder, it Item) {
	fmt.Fprintf(sb, "Verdict:    %s\n", it.Result.Verdict)
	fmt.Fprintf(sb, "Confidence: %s\n", it.Result.Confidence)
	if it.Result.Strategy != "" {
		fmt.Fprintf(sb, "Strategy:   %s\n", it.Result.Strategy)
	}
	fmt.Fprintf(sb, "Summary:    %s\n", it.Result.Summary)
	if it.Result.Error != "" {
		fmt.Fprintf(sb, "Error:      %s\n", it.Result.Error)
	}
}

// writeTable writes one aligned row per item.
func (w *SimpleWriter) writeTable(sb *strings.Builder, items []Item) {
	verdictWidth := len("VERDICT")
	for _, it := range items {
		verdictWidth = max(verdictWidth, runewidth.StringWidth(it.Result.Verdict.String()))
	}

	fmt.Fprintf(sb, "%-4s %s %s %s\n",
		"#",
		runewidth.FillRight("INPUT", inputColumnWidth),
		runewidth.FillRight("VERDICT", verdictWidth),
		"CONF",
	)
	sb.WriteString(strings.Repeat("-", 4+1+inputColumnWidth+1+verdictWidth+1+5))
	sb.WriteString("\n")

	for i, it := range items {
		input := truncateString(strings.Join(strings.Fields(it.Input), " "), inputColumnWidth)
		fmt.Fprintf(sb, "%-4d %s %s %s\n",
			i+1,
			runewidth.FillRight(input, inputColumnWidth),
			runewidth.FillRight(it.Result.Verdict.String(), verdictWidth),
			it.Result.Confidence,
		)
		if w.verbose {
			fmt.Fprintf(sb, "     %s\n", it.Result.Summary)
			if it.Result.Error != "" {
				fmt.Fprintf(sb, "     error: %s\n", it.Result.Error)
			}
		}
	}
	sb.WriteString("\n")
}

// writeTally writes the per-verdict counts.
func (w *SimpleWriter) writeTally(sb *strings.Builder, items []Item) {
	for _, c := range verdictCounts(items) {
		fmt.Fprintf(sb, "  %s %d\n", runewidth.FillRight(c.Verdict.String()+":", 22), c.Count)
	}
	fmt.Fprintf(sb, "  %s %d\n", runewidth.FillRight("Total:", 22), len(items))
}
