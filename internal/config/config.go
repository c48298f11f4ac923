// Package config loads runtime settings from a .env file and the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/thermoviz/internal/logger"
)

// EnvPrefix is prepended to every variable this package reads.
const EnvPrefix = "THERMOVIZ_"

// Defaults.
const (
	DefaultAddr       = ":8080"
	DefaultLogLevel   = "INFO"
	DefaultAutoplayMS = 100
)

// Config holds process-wide settings. Empty paths mean "use the platform
// default" and are resolved by the caller.
type Config struct {
	DBPath   string
	LogLevel string
	LogFile  string
	Addr     string

	// AutoplayInterval is the heating-curve tick period.
	AutoplayInterval time.Duration
}

// Load reads .env (if present) and then the environment.
func Load() Config {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	return Config{
		DBPath:           envOr("DB", ""),
		LogLevel:         envOr("LOG_LEVEL", DefaultLogLevel),
		LogFile:          envOr("LOG_FILE", ""),
		Addr:             envOr("ADDR", DefaultAddr),
		AutoplayInterval: time.Duration(envIntOr("AUTOPLAY_MS", DefaultAutoplayMS)) * time.Millisecond,
	}
}

// Validate checks the settings that would otherwise fail later.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%sADDR cannot be empty", EnvPrefix)
	}
	if c.AutoplayInterval <= 0 {
		return fmt.Errorf("%sAUTOPLAY_MS must be positive, got %v", EnvPrefix, c.AutoplayInterval)
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("%sLOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", EnvPrefix, c.LogLevel)
	}
	return nil
}

// Level is the parsed log level.
func (c Config) Level() logger.Level {
	return logger.ParseLevel(c.LogLevel)
}

func envOr(key, def string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		logger.Warn("invalid value for %s%s=%q, using default %d", EnvPrefix, key, v, def)
	}
	return def
}
