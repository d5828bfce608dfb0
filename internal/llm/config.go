package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the model subsystem.
type Config struct {
	Enabled     bool
	LogCalls    bool
	Endpoint    string
	Model       string
	APIKey      string
	TimeoutMs   int
	MaxRetries  int
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns a Config with sensible defaults. The external model
// is disabled until an API key is provided.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		LogCalls:    false,
		Endpoint:    "https://generativelanguage.googleapis.com",
		Model:       "gemini-2.5-flash",
		TimeoutMs:   15000,
		MaxRetries:  1,
		Temperature: 0.4,
		MaxTokens:   1024,
	}
}

// LoadConfig reads model configuration from environment variables, falling
// back to defaults for any unset values. Setting GEMINI_API_KEY enables the
// external model unless SKILLPATH_LLM_ENABLED overrides it.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("SKILLPATH_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SKILLPATH_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SKILLPATH_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SKILLPATH_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SKILLPATH_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SKILLPATH_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
