package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nao1215/veritas/internal/analyzer"
	"github.com/nao1215/veritas/internal/model"
	"github.com/nao1215/veritas/internal/report"
)

// errNoInput is returned when check is run without text, --link or --list.
var errNoInput = errors.New("no input provided (pass claim text, --link URL or --list FILE)")

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [text]",
		Short: "Analyze a claim, a web page or a list of both",
		Long: `Check runs the same analysis as POST /analyze without starting the server.

Arguments are joined into one claim. --link analyzes the visible text of a
web page. --list reads one input per line: lines starting with http:// or
https:// are treated as links, blank lines and lines starting with # are
skipped, everything else is a claim.

Examples:
  # Check a claim
  veritas check "The Eiffel Tower was moved to Berlin"

  # Check a news article
  veritas check --link https://example.com/news/article

  # Check a list of claims with 8 concurrent analyses, as Markdown
  veritas check --list claims.txt --concurrency 8 --markdown -o report.md`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	cmd.Flags().StringP("link", "l", "", "URL of a web page to analyze")
	cmd.Flags().StringP("list", "L", "", "File with one claim or URL per line")
	cmd.Flags().IntP("concurrency", "b", 0, "Number of concurrent analyses for --list (default 4)")
	cmd.Flags().Bool("no-history", false, "Do not record analyses in the history database")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if n, _ := cmd.Flags().GetInt("concurrency"); n != 0 {
		cfg.Concurrency = n
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.SaveHistory = false
	}
	cfg.JSONReport, _ = cmd.Flags().GetBool("json")
	cfg.MarkdownReport, _ = cmd.Flags().GetBool("markdown")
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	link, _ := cmd.Flags().GetString("link")
	listPath, _ := cmd.Flags().GetString("list")
	reqs, err := collectRequests(args, link, listPath)
	if err != nil {
		return err
	}

	logger := newCLILogger(cmd.ErrOrStderr(), cfg)

	db, err := openHistory(cfg, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	a, err := buildAnalyzer(cfg, logger, db)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var items []report.Item
	if len(reqs) == 1 {
		id := uuid.NewString()
		res := a.Analyze(analyzer.WithRequestID(ctx, id), reqs[0])
		item := report.NewItem(reqs[0], res)
		item.RequestID = id
		items = append(items, item)
	} else {
		results, batchErr := a.AnalyzeBatch(ctx, reqs)
		for i, res := range results {
			// Requests not started before cancellation have no verdict.
			if res.Result.Verdict == "" {
				continue
			}
			item := report.NewItem(reqs[i], res.Result)
			item.RequestID = res.RequestID
			items = append(items, item)
		}
		if batchErr != nil {
			logger.Warn("batch analysis interrupted", "error", batchErr)
		}
	}

	output, _ := cmd.Flags().GetString("output")
	if err := writeReport(cmd.OutOrStdout(), output, cfg.JSONReport, cfg.MarkdownReport, cfg.Verbose, items); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if failed := countErrors(items); failed > 0 {
		return fmt.Errorf("%d of %d analyses ended with an error verdict", failed, len(items))
	}
	return nil
}

// collectRequests turns the command inputs into analysis requests.
func collectRequests(args []string, link, listPath string) ([]model.AnalysisRequest, error) {
	var reqs []model.AnalysisRequest

	if text := strings.TrimSpace(strings.Join(args, " ")); text != "" {
		reqs = append(reqs, model.NewTextRequest(text))
	}
	if link != "" {
		reqs = append(reqs, model.NewLinkRequest(link))
	}
	if listPath != "" {
		listed, err := readRequestList(listPath)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, listed...)
	}

	if len(reqs) == 0 {
		return nil, errNoInput
	}
	return reqs, nil
}

// readRequestList reads one request per line from path.
func readRequestList(path string) ([]model.AnalysisRequest, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open list file: %w", err)
	}
	defer f.Close()

	var reqs []model.AnalysisRequest
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
			reqs = append(reqs, model.NewLinkRequest(line))
			continue
		}
		reqs = append(reqs, model.NewTextRequest(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list file: %w", err)
	}
	return reqs, nil
}

// writeReport renders items to outputPath, or to stdout when it is empty.
func writeReport(stdout io.Writer, outputPath string, jsonReport, markdownReport, verbose bool, items []report.Item) error {
	output := stdout
	if outputPath != "" {
		dir := filepath.Dir(outputPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports quote the analyzed input, so keep them owner-readable only.
		f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var writer report.Writer
	switch {
	case jsonReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case markdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(verbose))
	}

	_, err := writer.Write(items)
	return err
}

func countErrors(items []report.Item) int {
	n := 0
	for _, it := range items {
		if it.Result.Verdict.IsError() {
			n++
		}
	}
	return n
}
