package mcpsrv

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcpbase/mcpbase/internal/config"
	"github.com/mcpbase/mcpbase/internal/kvstore"
	"github.com/mcpbase/mcpbase/internal/logging"
	"github.com/mcpbase/mcpbase/internal/mcp"
	"github.com/mcpbase/mcpbase/internal/mcp/tools"
	"github.com/mcpbase/mcpbase/internal/query"
)

// Server is the mcpbase MCP server.
// It wraps the internal implementation and provides extension points.
type Server struct {
	internal   *mcp.Server
	deps       *Deps
	logCleanup func() error
}

// NewServer creates a new MCP server with the builtin demo tools, the
// code_review prompt, and the key-value store resources.
//
// Configuration defaults are loaded from the environment (MCPBASE_* variables)
// and can be overridden with functional options.
func NewServer(opts ...Option) (*Server, error) {
	// Build configuration from options
	cfg := &serverConfig{
		config: config.Load(), // Load defaults from environment
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logLevel != "" {
		cfg.config.LogLevel = cfg.logLevel
	}
	if cfg.logFile != "" {
		cfg.config.LogFile = cfg.logFile
	}
	if cfg.kvStoreURI != "" {
		cfg.config.KVStoreURI = cfg.kvStoreURI
	}

	// Setup logging
	logCleanup, err := logging.Setup(cfg.config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	// Create infrastructure
	seed := cfg.seed
	if seed == nil {
		seed = config.DefaultSeed()
	}
	store := kvstore.New(seed)
	queryEngine := query.NewEngine()

	// Create deps for internal tools and custom tools
	toolDeps := &tools.Deps{
		Store:  store,
		Config: cfg.config,
		Query:  queryEngine,
	}

	// Create public deps (same values, different type for public API)
	deps := &Deps{
		Store:  store,
		Config: cfg.config,
		Query:  queryEngine,
	}

	// Build internal server options
	var internalOpts []mcp.ServerOption
	if !cfg.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}
	if !cfg.disableBuiltinPrompts {
		internalOpts = append(internalOpts, mcp.WithBuiltinPrompts())
	}

	// Add custom extension registration callbacks
	for _, fn := range cfg.toolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.promptRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.resourceRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}

	// Add deferred tool registrations (tools that need Deps access)
	for _, fn := range cfg.deferredToolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	// Create internal server
	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{
		internal:   internal,
		deps:       deps,
		logCleanup: logCleanup,
	}, nil
}

// Run starts the MCP server with stdio transport.
// The server runs until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// RunTransport starts the server with the named transport: "stdio", "http",
// or "sse". Unsupported names are an error.
func (s *Server) RunTransport(ctx context.Context, transport string) error {
	return s.internal.RunTransport(ctx, transport)
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}

// MCPServer returns the underlying MCP SDK server.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.internal.MCPServer()
}
