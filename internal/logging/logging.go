// Package logging configures the process-wide slog logger.
//
// Logs always go to stderr: in stdio transport mode stdout carries protocol
// frames and must stay clean. An optional rotated log file can be added via
// LOG_FILE.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mcpbase/mcpbase/internal/config"
)

// Setup initializes the global slog logger from the server configuration.
// It returns a cleanup function to be called on shutdown.
func Setup(cfg *config.Config) (func() error, error) {
	writer := io.Writer(os.Stderr)
	cleanup := func() error { return nil }

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}

		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			Compress:   cfg.LogCompress,
			LocalTime:  true,
		}
		writer = io.MultiWriter(os.Stderr, lj)
		cleanup = lj.Close
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: ParseLevel(cfg.LogLevel),
	})
	slog.SetDefault(slog.New(handler))

	return cleanup, nil
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
