// Package config loads runtime configuration from the environment (and an
// optional .env file) at startup. Malformed values fail fast.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the job board API.
type Config struct {
	Port               string
	GinMode            string
	LogLevel           string
	CORSAllowedOrigins []string
	SeedDelay          time.Duration // simulated latency before the seed jobs appear
	ExtractDelay       time.Duration // simulated latency of the description extractor
	EventBufferSize    int           // per-subscriber notification buffer
}

const (
	defaultPort            = "8080"
	defaultGinMode         = "release"
	defaultLogLevel        = "info"
	defaultSeedDelay       = 500 * time.Millisecond
	defaultExtractDelay    = 1500 * time.Millisecond
	defaultEventBufferSize = 16
)

// Load reads .env (if present) and environment variables and returns a
// validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	seedDelay, err := durationEnv("SEED_DELAY", defaultSeedDelay)
	if err != nil {
		return nil, err
	}
	extractDelay, err := durationEnv("EXTRACT_DELAY", defaultExtractDelay)
	if err != nil {
		return nil, err
	}

	bufSize := defaultEventBufferSize
	if s := os.Getenv("EVENT_BUFFER_SIZE"); s != "" {
		v, convErr := strconv.Atoi(s)
		if convErr != nil || v < 1 {
			return nil, fmt.Errorf("EVENT_BUFFER_SIZE must be a positive integer, got %q", s)
		}
		bufSize = v
	}

	ginMode := stringEnv("GIN_MODE", defaultGinMode)
	switch ginMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", ginMode)
	}

	return &Config{
		Port:               stringEnv("PORT", defaultPort),
		GinMode:            ginMode,
		LogLevel:           stringEnv("LOG_LEVEL", defaultLogLevel),
		CORSAllowedOrigins: originsEnv("CORS_ALLOWED_ORIGINS"),
		SeedDelay:          seedDelay,
		ExtractDelay:       extractDelay,
		EventBufferSize:    bufSize,
	}, nil
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSAllowedOrigins) == 0 || (len(c.CORSAllowedOrigins) == 1 && c.CORSAllowedOrigins[0] == "*")
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a non-negative duration (e.g. 500ms), got %q", key, s)
	}
	return d, nil
}

func originsEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
