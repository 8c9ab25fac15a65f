package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/veritas/internal/config"
	"github.com/nao1215/veritas/internal/database"
	"github.com/nao1215/veritas/internal/model"
	"github.com/nao1215/veritas/internal/report"
)

// defaultHistoryLimit is the number of records listed by default.
const defaultHistoryLimit = 20

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [request-id]",
		Short: "Show stored analyses",
		Long: `History lists analyses recorded by "veritas serve" and "veritas check",
newest first. With a request ID it shows that single analysis.

Examples:
  # Show the 20 most recent analyses
  veritas history

  # Show only misleading claims, as JSON
  veritas history --verdict Misleading --json

  # Show one analysis by the X-Request-ID the server returned
  veritas history 0b6c4f1e-7f55-4c47-9c1d-5b6d1b0f6a90

  # Show how many analyses ended with each verdict
  veritas history --stats`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Maximum number of analyses to list")
	cmd.Flags().String("verdict", "", `Only list analyses with this verdict (e.g. "Likely Factual")`)
	cmd.Flags().Bool("stats", false, "Show the number of analyses per verdict")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")

	return cmd
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.JSONReport, _ = cmd.Flags().GetBool("json")
	cfg.MarkdownReport, _ = cmd.Flags().GetBool("markdown")
	if cfg.JSONReport && cfg.MarkdownReport {
		return fmt.Errorf("configuration error: %w", config.ErrConflictingReportFormats)
	}

	var filter database.ListFilter
	filter.Limit, _ = cmd.Flags().GetInt("limit")
	if raw, _ := cmd.Flags().GetString("verdict"); raw != "" {
		v, ok := model.ParseVerdict(raw)
		if !ok {
			return fmt.Errorf("unknown verdict %q (valid: %s)", raw, verdictList())
		}
		filter.Verdict = v
	}

	db, err := database.Open(cfg.DBDir, database.Options{EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no analysis history found in %s: %w", cfg.DBDir, err)
	}
	defer db.Close()

	ctx := contextOf(cmd)
	out := cmd.OutOrStdout()

	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		counts, err := db.CountByVerdict(ctx)
		if err != nil {
			return err
		}
		return writeStats(out, counts)
	}

	var records []*database.AnalysisRecord
	if len(args) == 1 {
		rec, err := db.GetByRequestID(ctx, args[0])
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("no analysis with request ID %s", args[0])
		}
		if err != nil {
			return err
		}
		records = append(records, rec)
	} else {
		records, err = db.ListRecent(ctx, filter)
		if err != nil {
			return err
		}
	}

	if len(records) == 0 && !cfg.JSONReport {
		fmt.Fprintln(out, "No analyses recorded yet.")
		return nil
	}

	items := make([]report.Item, 0, len(records))
	for _, rec := range records {
		item := report.NewItem(rec.Request, rec.Result)
		item.RequestID = rec.RequestID
		item.Timestamp = rec.Timestamp
		items = append(items, item)
	}
	return writeReport(out, "", cfg.JSONReport, cfg.MarkdownReport, cfg.Verbose, items)
}

// writeStats prints one line per verdict in the fixed verdict order.
func writeStats(w io.Writer, counts map[model.Verdict]int) error {
	var sb strings.Builder
	total := 0
	for _, v := range model.AllVerdicts() {
		n := counts[v]
		total += n
		fmt.Fprintf(&sb, "%-20s %d\n", v.String()+":", n)
	}
	fmt.Fprintf(&sb, "%-20s %d\n", "Total:", total)
	_, err := io.WriteString(w, sb.String())
	return err
}

func verdictList() string {
	names := make([]string, 0, len(model.AllVerdicts()))
	for _, v := range model.AllVerdicts() {
		names = append(names, fmt.Sprintf("%q", v))
	}
	return strings.Join(names, ", ")
}
