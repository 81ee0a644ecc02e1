package tools

import (
	"log/slog"

	"github.com/mcpbase/mcpbase/internal/result"
)

// Error codes attached to error envelopes via metadata. Every failure a
// tool can produce falls into one of these three classes; nothing escapes
// the tool boundary as a Go error.
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnexpected   = "UNEXPECTED"
)

// InvalidInput builds an error envelope for a rejected argument.
func InvalidInput(message string) result.Envelope {
	return result.Error(message, map[string]any{"error_code": ErrCodeInvalidInput})
}

// NotFound builds an error envelope for a missing referent.
func NotFound(message string) result.Envelope {
	return result.Error(message, map[string]any{"error_code": ErrCodeNotFound})
}

// Unexpected converts an unanticipated failure into an error envelope and
// logs it. The process is never terminated by a single failed operation.
func Unexpected(err error) result.Envelope {
	slog.Error("unexpected tool failure", slog.String("error", err.Error()))
	return result.Error(err.Error(), map[string]any{"error_code": ErrCodeUnexpected})
}
