package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/mcpbase/mcpbase/internal/config"
)

// serveHTTP runs the server over HTTP until the context is cancelled.
//
// The handler mounts:
//   - /health  → liveness probe (GET/HEAD only)
//   - /sse     → legacy SSE transport for older MCP clients
//   - /mcp     → streamable HTTP transport
//   - /        → streamable HTTP transport (default mount)
func (s *Server) serveHTTP(ctx context.Context) error {
	streamable := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return s.mcpServer },
		nil,
	)
	sse := sdkmcp.NewSSEHandler(
		func(*http.Request) *sdkmcp.Server { return s.mcpServer },
		nil,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/sse", sse)
	mux.Handle("/mcp", streamable)
	mux.Handle("/", streamable)

	srv := &http.Server{
		Addr:    s.deps.Config.HTTPAddr,
		Handler: mux,
	}

	slog.Info("serving MCP over HTTP", slog.String("addr", srv.Addr))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.deps.Config.ShutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// handleHealth serves a liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", MimeJSON)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","service":%q,"version":%q}`, config.ServerName, config.ServerVersion)
}
