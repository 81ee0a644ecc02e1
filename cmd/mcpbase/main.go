package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcpbase/mcpbase/internal/mcp/tools"
	"github.com/mcpbase/mcpbase/internal/selftest"
	"github.com/mcpbase/mcpbase/pkg/mcpsrv"
)

func main() {
	transport := flag.String("transport", "", "transport to serve on: stdio, http, or sse (default: MCPBASE_TRANSPORT or stdio)")
	selfTest := flag.Bool("self-test", false, "exercise the builtin components and exit")
	flag.Parse()

	// Set up context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create MCP server with all builtin tools, prompts, and resources.
	// Configuration is loaded from environment variables:
	// - MCPBASE_TRANSPORT: stdio, http, sse (default: stdio)
	// - MCPBASE_HTTP_ADDR: listen address for http/sse (default: :8000)
	// - MCPBASE_LOG_LEVEL: debug, info, warn, error (default: info)
	// - MCPBASE_LOG_FILE: path to log file (default: stderr only)
	// - etc. (see internal/config for all options)
	server, err := mcpsrv.NewServer()
	if err != nil {
		slog.Error("failed to create MCP server", "error", err)
		os.Exit(1)
	}
	defer server.Close()

	deps := server.Deps()

	if *selfTest {
		if err := selftest.Run(ctx, &tools.Deps{
			Store:  deps.Store,
			Config: deps.Config,
			Query:  deps.Query,
		}); err != nil {
			slog.Error("self-test failed", "error", err)
			os.Exit(1)
		}
		slog.Info("self-test passed")
		return
	}

	name := *transport
	if name == "" {
		name = deps.Config.Transport
	}

	slog.Info("starting mcpbase MCP server", slog.String("transport", name))
	if err := server.RunTransport(ctx, name); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
