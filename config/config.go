// Package config loads the showdown command line settings from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when the config file cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of the showdown command.
type Config struct {
	LogLevel slog.Level
	Plain    bool
	Deal     DealConfig
	Ledger   LedgerConfig
}

type DealConfig struct {
	Seed   string
	Rounds int
}

type LedgerConfig struct {
	Path string
}

type yamlConfig struct {
	LogLevel string `yaml:"log_level"`
	Plain    bool   `yaml:"plain"`
	Deal     struct {
		Seed   string `yaml:"seed"`
		Rounds int    `yaml:"rounds"`
	} `yaml:"deal"`
	Ledger struct {
		Path string `yaml:"path"`
	} `yaml:"ledger"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		LogLevel: slog.LevelInfo,
		Deal:     DealConfig{Rounds: 1},
	}
}

// Load reads the config file at path. A missing file yields Default.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes YAML settings on top of Default.
func Parse(b []byte) (Config, error) {
	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := Default()
	if dto.LogLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(dto.LogLevel))); err != nil {
			return Config{}, fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
		}
	}
	cfg.Plain = dto.Plain
	cfg.Deal.Seed = dto.Deal.Seed
	if dto.Deal.Rounds < 0 {
		return Config{}, fmt.Errorf("%w: deal.rounds must not be negative, got %d", ErrInvalidConfig, dto.Deal.Rounds)
	}
	if dto.Deal.Rounds > 0 {
		cfg.Deal.Rounds = dto.Deal.Rounds
	}
	cfg.Ledger.Path = dto.Ledger.Path
	return cfg, nil
}
