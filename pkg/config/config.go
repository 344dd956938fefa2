// Package config loads optional runtime settings. Every field has a
// default, so running without a file or environment is the normal case.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds tool settings.
type Config struct {
	SegmentedLangs []string  `yaml:"segmented_langs" env:"TATOEASE_SEGMENTED_LANGS" env-default:"jpn" env-separator:","`
	MaxLineBytes   int       `yaml:"max_line_bytes"  env:"TATOEASE_MAX_LINE_BYTES"  env-default:"4194304"`
	Log            LogConfig `yaml:"log"`
}

// LogConfig configures the progress logger.
type LogConfig struct {
	Level  string `yaml:"level"  env:"TATOEASE_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"TATOEASE_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from a YAML file (if path is non-empty) and the
// environment. Priority: ENV > YAML > defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.MaxLineBytes < 1024 {
		return fmt.Errorf("config: max_line_bytes must be at least 1024, got %d", c.MaxLineBytes)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log format must be text or json, got %q", c.Log.Format)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}
