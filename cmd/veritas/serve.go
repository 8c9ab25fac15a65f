package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nao1215/veritas/internal/log"
	"github.com/nao1215/veritas/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Veritas HTTP service",
		Long: `Serve starts the HTTP service used by the Veritas web client.

Routes:
  GET  /         liveness banner
  GET  /health   status and active strategy
  POST /analyze  {"type":"text"|"link","content":"..."}

Examples:
  # Serve with the search strategy on :5000
  SERPER_API_KEY=... veritas serve

  # Serve with the classifier on another port
  veritas serve --strategy classifier --listen 127.0.0.1:8080`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("listen", "l", "", "Listen address (default :5000)")
	cmd.Flags().StringSlice("allowed-origin", nil, "CORS origin allowed to call the API (repeatable)")
	cmd.Flags().Bool("no-history", false, "Do not record analyses in the history database")

	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
		cfg.ListenAddress = listen
	}
	if origins, _ := cmd.Flags().GetStringSlice("allowed-origin"); len(origins) > 0 {
		cfg.AllowedOrigins = origins
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.SaveHistory = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewServerLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.JSONLog)

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

	gin.SetMode(gin.ReleaseMode)
	srv, err := server.New(a,
		server.WithAddress(cfg.ListenAddress),
		server.WithAllowedOrigins(cfg.AllowedOrigins),
		server.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Veritas listening on %s (strategy: %s)\n", cfg.ListenAddress, a.StrategyName())
	return srv.Run(ctx)
}

// contextOf returns the command context, or Background when the command
// runs without one.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
