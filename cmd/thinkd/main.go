// Thinkd is an MCP server for deliberate, step-by-step thinking.
//
// It exposes a single tool, deliberatethinking, over the stdio transport
// and keeps an in-memory append-only ledger of submitted thoughts with a
// branch index. Nothing is persisted across restarts.
//
// Usage:
//
//	# Start the server (stdio; wire it into your MCP client config)
//	thinkd
//
//	# Configure via environment
//	LOGGING_LEVEL=debug SERVER_DISABLE_THOUGHT_LOG=1 thinkd
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/thinkd/internal/config"
	"github.com/fyrsmithlabs/thinkd/internal/logging"
	"github.com/fyrsmithlabs/thinkd/internal/mcp"
	"github.com/fyrsmithlabs/thinkd/internal/thinking"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "thinkd",
	Short: "Deliberate-thinking MCP server",
	Long: `thinkd serves the deliberatethinking MCP tool over stdio.

Each call records one thinking step in an append-only history; steps can
revise earlier thoughts or branch into alternate reasoning paths. The
response summarizes the current position, known branches, and history size.

Configuration is read from ~/.config/thinkd/config.yaml and overridden by
environment variables (SERVER_NAME, LOGGING_LEVEL, ...).`,
	SilenceUsage: true,
	RunE:         runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("thinkd\n")
		fmt.Printf("Version:    %s\n", version)
		fmt.Printf("Commit:     %s\n", gitCommit)
		fmt.Printf("Build Date: %s\n", buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/thinkd/config.yaml)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runServe starts the stdio MCP server and blocks until the client
// disconnects or a termination signal arrives.
func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync() // Best-effort sync on shutdown
	}()

	logger.Info("starting thinkd",
		zap.String("name", cfg.Server.Name),
		zap.String("version", cfg.Server.Version),
		zap.Bool("thought_log", !cfg.Server.DisableThoughtLog))

	server, err := mcp.NewServer(&mcp.Config{
		Name:       cfg.Server.Name,
		Version:    cfg.Server.Version,
		Logger:     logger,
		ThoughtLog: !cfg.Server.DisableThoughtLog,
	}, thinking.NewLedger())
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("thinkd shutdown complete")
	return nil
}
