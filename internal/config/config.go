// Package config provides the inrange command-line configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable, e.g. INRANGE_LOG_LEVEL.
const Prefix = "INRANGE"

// LogFormat selects the log output encoding.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Defaults, kept in sync with the struct tags below.
const (
	DefaultLogLevel  = "warn"
	DefaultCacheSize = 4096
)

// Config holds environment-based configuration.
type Config struct {
	// LogLevel is the zerolog level name.
	// Env: INRANGE_LOG_LEVEL (default: warn)
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	// LogFormat is console or json.
	// Env: INRANGE_LOG_FORMAT (default: console)
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// CacheSize bounds the memo cache used by batch checks.
	// Env: INRANGE_CACHE_SIZE (default: 4096)
	CacheSize int `envconfig:"CACHE_SIZE" default:"4096"`

	// Exclusive is the default for --exclusive.
	// Env: INRANGE_EXCLUSIVE (default: false)
	Exclusive bool `envconfig:"EXCLUSIVE" default:"false"`

	// Strict is the default for --strict.
	// Env: INRANGE_STRICT (default: false)
	Strict bool `envconfig:"STRICT" default:"false"`

	// Color is the default for --color.
	// Env: INRANGE_COLOR (default: false)
	Color bool `envconfig:"COLOR" default:"false"`
}

// Format returns the parsed log format. Unknown values fall back to console.
func (c Config) Format() LogFormat {
	if strings.EqualFold(c.LogFormat, string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatConsole
}

// LoadFromEnv reads the configuration from the environment.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	if cfg.CacheSize < 0 {
		return Config{}, fmt.Errorf("invalid %s_CACHE_SIZE %d: must not be negative", Prefix, cfg.CacheSize)
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads ".env" from the current directory.
// A missing file is not an error. Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Load loads envFile, then the environment.
func Load(envFile string) (Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return LoadFromEnv()
}
