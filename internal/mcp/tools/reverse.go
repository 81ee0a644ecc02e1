package tools

import (
	"context"
	"log/slog"

	"github.com/mcpbase/mcpbase/internal/result"
)

// ReverseInput is the input for reverse.
type ReverseInput struct {
	Text string `json:"text" jsonschema:"required,The text to reverse"`
}

// ToolReverse reverses the provided text rune-wise, so multi-byte
// characters survive the trip.
func ToolReverse(d *Deps) EnvelopeHandler[ReverseInput] {
	return func(ctx context.Context, input ReverseInput) result.Envelope {
		slog.Debug("reverse tool called", slog.Int("text_length", len(input.Text)))

		runes := []rune(input.Text)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		reversed := string(runes)

		return result.Success(reversed, map[string]any{
			"original_text":   input.Text,
			"original_length": len([]rune(input.Text)),
			"reversed_length": len(runes),
			"operation":       "string_reverse",
		})
	}
}
