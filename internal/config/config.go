// Package config loads the settings shared by the commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envLogLevel = "LOG_LEVEL"
	envWorkers  = "WEIQI_WORKERS"
)

// Config holds values read from the environment. Command line flags
// override them.
type Config struct {
	LogLevel string
	Workers  int
}

// Load reads envFile into the environment, without overriding variables
// that are already set, then builds the Config. An empty envFile means an
// optional ".env" in the working directory.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	cfg := &Config{
		LogLevel: getEnv(envLogLevel, "info"),
		Workers:  1,
	}
	if v := os.Getenv(envWorkers); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("%s must be a positive integer, got %q", envWorkers, v)
		}
		cfg.Workers = workers
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewLogger builds a console logger writing to stderr at the given level
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
