package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/veritas/internal/model"
)

// MarkdownWriter outputs results in Markdown format.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs items as a Markdown report.
func (w *MarkdownWriter) Write(items []Item) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Veritas Report")
	md.PlainText("")

	w.writeSummary(md, items)
	w.writeResults(md, items)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeSummary writes the verdict distribution and an overall alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, items []Item) {
	md.H2("Summary")
	md.PlainText("")

	counts := verdictCounts(items)
	rows := make([][]string, 0, len(counts)+1)
	for _, c := range counts {
		rows = append(rows, []string{c.Verdict.String(), strconv.Itoa(c.Count)})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(len(items)) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Verdict", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(counts) > 1 {
		w.writePieChart(md, counts)
	}
	w.writeAlert(md, items)
}

// writePieChart writes a mermaid pie chart of the verdict distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, counts []verdictCount) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Verdict Distribution"),
		piechart.WithShowData(true),
	)
	for _, c := range counts {
		chart.LabelAndIntValue(c.Verdict.String(), uint64(c.Count)) //nolint:gosec // counts are positive
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes the most severe applicable alert.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, items []Item) {
	var disputed, failed, unverified int
	for _, it := range items {
		switch v := it.Result.Verdict; {
		case v == model.VerdictMisleading || v == model.VerdictMisinformation:
			disputed++
		case v.IsError():
			failed++
		case v == model.VerdictUnverifiedClaim:
			unverified++
		}
	}

	switch {
	case disputed > 0:
		md.Cautionf("%d item(s) appear to be false or misleading.", disputed)
	case failed > 0:
		md.Warningf("%d item(s) could not be analyzed.", failed)
	case unverified > 0:
		md.Note("Some claims could not be verified. Please proceed with caution.")
	case len(items) > 0:
		md.Tip("All analyzed items appear to be factual.")
	default:
		md.Note("Nothing was analyzed.")
	}
	md.PlainText("")
}

// writeResults writes one table row per item and the full summaries.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, items []Item) {
	md.H2("Results")
	md.PlainText("")

	if len(items) == 0 {
		md.PlainText("No results.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(items))
	for i, it := range items {
		strategy := it.Result.Strategy
		if strategy == "" {
			strategy = "-"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			escapeCell(truncateString(it.Input, 60)),
			it.Result.Verdict.String(),
			it.Result.Confidence.String(),
			strategy,
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Input", "Verdict", "Confidence", "Strategy"},
		Rows:   rows,
	})
	md.PlainText("")

	for i, it := range items {
		body := it.Result.Summary
		if it.Result.Error != "" {
			body += "\n\nError: " + it.Result.Error
		}
		md.Details(strconv.Itoa(i+1)+". "+it.Result.Verdict.String(), body)
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [Veritas](https://github.com/nao1215/veritas)*")
}

// escapeCell keeps pipes and newlines from breaking a table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.Join(strings.Fields(s), " ")
}

// truncateString truncates s to maxWidth display columns with an ellipsis.
func truncateString(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
