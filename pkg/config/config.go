package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the process-wide configuration, resolved once at startup from
// the environment.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	LogPath        string
	Environment    string
}

// Load reads configuration from environment variables. SYLLAB_API_URL is the
// only required value.
func Load() (*Config, error) {
	base := os.Getenv("SYLLAB_API_URL")
	if base == "" {
		return nil, fmt.Errorf("SYLLAB_API_URL is not set")
	}

	timeout := 10 * time.Second
	if raw := os.Getenv("SYLLAB_TIMEOUT_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("invalid SYLLAB_TIMEOUT_MS %q", raw)
		}
		timeout = time.Duration(ms) * time.Millisecond
	}

	return &Config{
		APIBaseURL:     base,
		RequestTimeout: timeout,
		LogPath:        getEnv("SYLLAB_LOG", defaultLogPath()),
		Environment:    getEnv("SYLLAB_ENV", "dev"),
	}, nil
}

func defaultLogPath() string {
	return ".syllab/syllab.log"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
