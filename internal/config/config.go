// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Server identity.
const (
	ServerName        = "mcpbase"
	ServerVersion     = "1.0.0"
	ServerDescription = "A minimal yet structured MCP base server"
)

// Transport names accepted by MCPBASE_TRANSPORT and the -transport flag.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
	TransportSSE   = "sse"
)

// Config holds all configuration for the MCP server.
type Config struct {
	Transport     string        // MCPBASE_TRANSPORT, default "stdio"
	HTTPAddr      string        // MCPBASE_HTTP_ADDR, default ":8000"
	KVStoreURI    string        // MCPBASE_KV_STORE_URI, default "kv://store"
	Debug         bool          // MCPBASE_DEBUG, default false
	ShutdownGrace time.Duration // MCPBASE_SHUTDOWN_GRACE_MS, default 5000ms

	PromptCacheMaxItems int // PROMPT_CACHE_MAX_ITEMS, default 128

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info" ("debug" when MCPBASE_DEBUG)
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	cfg := &Config{
		Transport:     getEnvString("MCPBASE_TRANSPORT", TransportStdio),
		HTTPAddr:      getEnvString("MCPBASE_HTTP_ADDR", ":8000"),
		KVStoreURI:    getEnvString("MCPBASE_KV_STORE_URI", "kv://store"),
		Debug:         getEnvBool("MCPBASE_DEBUG", false),
		ShutdownGrace: getEnvDurationMs("MCPBASE_SHUTDOWN_GRACE_MS", 5000),

		PromptCacheMaxItems: getEnvInt("PROMPT_CACHE_MAX_ITEMS", 128),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}

	if cfg.Debug && os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = "debug"
	}

	return cfg
}

// DefaultSeed returns the initial key-value store contents: an example
// entry, the startup timestamp, a counter, and a nested config sub-object.
func DefaultSeed() map[string]any {
	return map[string]any{
		"example_key":    "example_value",
		"server_started": time.Now().Format(time.RFC3339Nano),
		"counter":        0,
		"config": map[string]any{
			"server_name": ServerName,
			"version":     ServerVersion,
		},
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
