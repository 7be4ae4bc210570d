package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/CTAG07/markovbrain/pkg/markov"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// Config is the configuration document read at startup. The brain options are
// inlined so that a bare `past_memory: corpus.txt` file is a valid config.
type Config struct {
	Brain markov.Config `yaml:",inline"`

	// PastMemoryDB is an optional SQLite data source whose utterances are
	// remembered after the past memory file.
	PastMemoryDB string `yaml:"past_memory_db"`

	// PastMemoryQuery selects the utterance text column. Empty means
	// corpus.DefaultQuery.
	PastMemoryQuery string `yaml:"past_memory_query"`

	LogLevel string `yaml:"log_level"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Brain:    markov.DefaultConfig(),
		LogLevel: "info",
	}
}

// LoadConfig reads the configuration from a YAML file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			var data []byte
			data, err = yaml.Marshal(config)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// The brain can still run with defaults.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Level maps LogLevel onto a slog level, defaulting to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
