// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string
	Gemini      GeminiConfig
	Timeout     TimeoutConfig
}

// GeminiConfig controls the hosted language-model call.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Endpoint    string
	PersonaPath string // optional persona preamble file prepended to prompts
	Timeout     time.Duration
}

// TimeoutConfig groups the HTTP server timeouts.
type TimeoutConfig struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", ""),
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Endpoint:    getEnv("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta/models"),
			PersonaPath: getEnv("PERSONA_PATH", ""),
			Timeout:     getEnvDuration("GEMINI_TIMEOUT", 30*time.Second),
		},
		Timeout: TimeoutConfig{
			Read:  getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			Write: getEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			Idle:  getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
// A missing GEMINI_API_KEY is allowed: the app falls back to deterministic
// interpretation and the visuals still work.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("GEMINI_MODEL cannot be empty")
	}
	if c.Gemini.Endpoint == "" {
		return fmt.Errorf("GEMINI_ENDPOINT cannot be empty")
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be > 0")
	}
	return nil
}

// LLMEnabled returns true if a language-model credential is configured.
func (c *Config) LLMEnabled() bool {
	return c.Gemini.APIKey != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
