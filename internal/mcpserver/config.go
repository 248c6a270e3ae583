package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/casetools/tokenizer"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// DefaultPolicy is the tokenization policy applied when a tool call
	// does not specify one.
	DefaultPolicy tokenizer.Policy

	// MaxInput caps the size in bytes of text accepted by the tools.
	MaxInput int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CASETOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultPolicy: envPolicy("CASETOOLS_POLICY", tokenizer.DefaultPolicy),
		MaxInput:      envInt("CASETOOLS_MAX_INPUT", 65536),
	}
}

func envPolicy(key string, fallback tokenizer.Policy) tokenizer.Policy {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if !tokenizer.IsValidPolicy(v) {
		slog.Warn("invalid policy env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return tokenizer.Policy(v)
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
