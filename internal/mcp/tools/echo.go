// Package tools contains the MCP tool implementations for mcpbase.
package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcpbase/mcpbase/internal/result"
)

// EchoInput is the input for echo.
type EchoInput struct {
	Message string `json:"message" jsonschema:"required,The message to echo back"`
}

// ToolEcho echoes the provided message back with diagnostic metadata.
func ToolEcho(d *Deps) EnvelopeHandler[EchoInput] {
	return func(ctx context.Context, input EchoInput) result.Envelope {
		slog.Debug("echo tool called", slog.Int("message_length", len(input.Message)))

		return result.Success("Echo: "+input.Message, map[string]any{
			"timestamp":        time.Now().Format(time.RFC3339Nano),
			"original_message": input.Message,
			"message_length":   len(input.Message),
		})
	}
}
