package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/worklog/internal/config"
	"github.com/manav03panchal/worklog/internal/logging"
	"github.com/manav03panchal/worklog/internal/server"
)

// Serve command flags.
var serveFlagAddr string

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the Worklog HTTP API. The server exposes entry CRUD, reports,
suggestions and CSV export under /api and shuts down gracefully on
SIGINT or SIGTERM.

Examples:
  worklog serve
  worklog serve --addr :9090
  WORKLOG_LISTEN_ADDR=:9090 worklog serve`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlagAddr, "addr", "", "Listen address (overrides WORKLOG_LISTEN_ADDR)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveFlagAddr != "" {
		config.Global.Server.ListenAddr = serveFlagAddr
	}

	// The server logs requests; lift the CLI's quiet default.
	if !flagDebug {
		logging.Init(logging.Config{Level: slog.LevelInfo, JSON: true})
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(ctx.Service)
	return srv.ListenAndServe(sigCtx)
}
