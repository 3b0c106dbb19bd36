// Package mcp exposes the thought ledger over the Model Context Protocol.
//
// The server is built on the MCP SDK (github.com/modelcontextprotocol/go-sdk/mcp)
// and registers a single tool, deliberatethinking. All protocol framing and
// handshake handling belongs to the SDK; this package only validates tool
// arguments and drives the ledger.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/thinkd/internal/thinking"
)

// Server wraps the MCP SDK server around a thought ledger.
type Server struct {
	mcp     *mcp.Server
	ledger  *thinking.Ledger
	metrics *Metrics
	logger  *zap.Logger

	// thoughtLog controls the per-thought Info echo. It is incidental
	// instrumentation, not part of the tool's observable contract.
	thoughtLog bool
}

// Config configures the MCP server.
type Config struct {
	// Name is the server implementation name (default: "thinkd")
	Name string

	// Version is the server version (default: "1.0.0")
	Version string

	// Logger for structured logging
	Logger *zap.Logger

	// ThoughtLog echoes each accepted thought to the logger (default: true)
	ThoughtLog bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Name:       "thinkd",
		Version:    "1.0.0",
		Logger:     zap.NewNop(),
		ThoughtLog: true,
	}
}

// NewServer creates a new MCP server backed by the given ledger.
func NewServer(cfg *Config, ledger *thinking.Ledger) (*Server, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if ledger == nil {
		return nil, fmt.Errorf("ledger is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		},
		nil,
	)

	s := &Server{
		mcp:        mcpServer,
		ledger:     ledger,
		metrics:    NewMetrics(cfg.Logger),
		logger:     cfg.Logger,
		thoughtLog: cfg.ThoughtLog,
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server on the stdio transport.
//
// Stdout carries the protocol framing, so nothing else in the process may
// write to it. Run blocks until the context is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio transport")
	transport := &mcp.StdioTransport{}
	if err := s.mcp.Run(ctx, transport); err != nil {
		return fmt.Errorf("server run failed: %w", err)
	}
	return nil
}

// Ledger returns the ledger backing this server.
func (s *Server) Ledger() *thinking.Ledger {
	return s.ledger
}
