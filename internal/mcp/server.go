// Package mcp wires the mcpbase components onto the MCP SDK server.
package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcpbase/mcpbase/internal/config"
	"github.com/mcpbase/mcpbase/internal/mcp/prompts"
	"github.com/mcpbase/mcpbase/internal/mcp/tools"
)

// Server wraps the MCP server with mcpbase-specific components.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps

	// Extension toggles
	enableBuiltinTools   bool
	enableBuiltinPrompts bool

	// Custom extension registration callbacks
	customRegistrations []func(*sdkmcp.Server)
}

// ServerOption is a functional option for configuring the Server.
type ServerOption func(*Server)

// WithBuiltinTools enables the builtin tools and the kv resources.
func WithBuiltinTools() ServerOption {
	return func(s *Server) {
		s.enableBuiltinTools = true
	}
}

// WithBuiltinPrompts enables the builtin prompts.
func WithBuiltinPrompts() ServerOption {
	return func(s *Server) {
		s.enableBuiltinPrompts = true
	}
}

// WithCustomRegistration adds a custom registration callback. The callback
// receives the underlying MCP server and can register tools, prompts, or
// resources directly.
func WithCustomRegistration(fn func(*sdkmcp.Server)) ServerOption {
	return func(s *Server) {
		s.customRegistrations = append(s.customRegistrations, fn)
	}
}

// NewServer creates a new MCP server with the provided dependencies and options.
func NewServer(deps *tools.Deps, opts ...ServerOption) (*Server, error) {
	if deps == nil || deps.Store == nil || deps.Config == nil {
		return nil, fmt.Errorf("deps with store and config are required")
	}

	s := &Server{deps: deps}

	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    config.ServerName,
			Version: config.ServerVersion,
		},
		nil,
	)

	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware())

	if s.enableBuiltinTools {
		tools.Register(s.mcpServer, deps)
		s.registerResources()
	}
	if s.enableBuiltinPrompts {
		promptCfg := &prompts.Config{
			CacheMaxItems: deps.Config.PromptCacheMaxItems,
		}
		if err := prompts.Register(s.mcpServer, promptCfg); err != nil {
			return nil, fmt.Errorf("registering prompts: %w", err)
		}
	}

	for _, fn := range s.customRegistrations {
		fn(s.mcpServer)
	}

	return s, nil
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// RunTransport starts the server with the named transport. Unsupported
// names are an error; there is deliberately no silent fallback.
func (s *Server) RunTransport(ctx context.Context, transport string) error {
	switch transport {
	case config.TransportStdio:
		return s.Run(ctx)
	case config.TransportHTTP, config.TransportSSE:
		return s.serveHTTP(ctx)
	default:
		return fmt.Errorf("unsupported transport %q (supported: %s, %s, %s)",
			transport, config.TransportStdio, config.TransportHTTP, config.TransportSSE)
	}
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
