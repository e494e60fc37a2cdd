// Package config loads CLI defaults from a .env file and MINDMAP_* environment
// variables. Command-line flags override everything loaded here.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when Load is given an empty path.
const DefaultEnvFile = ".env"

type GenerationConfig struct {
	Style         string
	Complexity    string
	Ranker        string
	MaxTextLength int
	Timeout       time.Duration
}

type OutputConfig struct {
	Format string
	Emoji  bool
	Seed   int64
}

type Config struct {
	LogLevel   string
	Generation GenerationConfig
	Output     OutputConfig
}

// Load reads envFile (a missing file is ignored) into the process environment
// and builds a Config from it. Variables already set in the environment win
// over the file.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file %q: %w", envFile, err)
	}

	return &Config{
		LogLevel: strings.ToLower(getEnv("MINDMAP_LOG_LEVEL", "error")),
		Generation: GenerationConfig{
			Style:         getEnv("MINDMAP_STYLE", "balanced"),
			Complexity:    getEnv("MINDMAP_COMPLEXITY", "medium"),
			Ranker:        getEnv("MINDMAP_RANKER", "centrality"),
			MaxTextLength: getEnvInt("MINDMAP_MAX_TEXT_LENGTH", 1500),
			Timeout:       time.Duration(getEnvInt("MINDMAP_TIMEOUT_MS", 10000)) * time.Millisecond,
		},
		Output: OutputConfig{
			Format: getEnv("MINDMAP_FORMAT", "json"),
			Emoji:  getEnvBool("MINDMAP_EMOJI", false),
			Seed:   int64(getEnvInt("MINDMAP_SEED", 0)),
		},
	}, nil
}

// SlogLevel maps LogLevel to a slog level; unknown names yield Error.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
