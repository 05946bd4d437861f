package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
// Precedence: CLI flags > environment variables > config file defaults.
type envConfig struct {
	ConfigPath string        // RESUMEGEN_CONFIG: config file name or path
	Template   string        // RESUMEGEN_TEMPLATE: letter template path
	Position   string        // RESUMEGEN_POSITION: default position title
	UserAgent  string        // RESUMEGEN_USER_AGENT: fetch User-Agent
	Timeout    time.Duration // RESUMEGEN_TIMEOUT: fetch timeout
}

// knownEnvVars lists valid RESUMEGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RESUMEGEN_CONFIG":     true,
	"RESUMEGEN_TEMPLATE":   true,
	"RESUMEGEN_POSITION":   true,
	"RESUMEGEN_USER_AGENT": true,
	"RESUMEGEN_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("RESUMEGEN_CONFIG"),
		Template:   os.Getenv("RESUMEGEN_TEMPLATE"),
		Position:   os.Getenv("RESUMEGEN_POSITION"),
		UserAgent:  os.Getenv("RESUMEGEN_USER_AGENT"),
	}

	if timeout := os.Getenv("RESUMEGEN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized RESUMEGEN_* variables.
// Helps catch typos like RESUMEGEN_POSTION instead of RESUMEGEN_POSITION.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "RESUMEGEN_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}
