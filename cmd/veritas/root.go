package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for Veritas.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "veritas",
		Short: "Truthfulness verdicts for claims and news articles",
		Long: `Veritas assigns a verdict such as "Misleading" or "Likely Factual" to a claim
or to the text of a web page.

Two strategies are available:
  search      queries a web search API for fact-check and news coverage (default)
  classifier  scores the text with a trained TF-IDF linear model

The search strategy needs an API key, read from --api-key,
VERITAS_SEARCH_API_KEY or SERPER_API_KEY (a .env file is loaded if present).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .veritas in current or home directory)")
	cmd.PersistentFlags().String("api-key", "", "Search API key (overrides environment)")
	cmd.PersistentFlags().StringP("strategy", "s", "", `Verdict strategy: "search" or "classifier"`)
	cmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
