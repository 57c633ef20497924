package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	UI      UIConfig      `koanf:"ui"`
	Search  SearchConfig  `koanf:"search"`
	Session SessionConfig `koanf:"session"`
}

type UIConfig struct {
	ColoredOutput     bool `koanf:"colored_output"`
	ShowCompletedMark bool `koanf:"show_completed_mark"`
}

type SearchConfig struct {
	// MaxResults caps fuzzy-search fallback results. 0 means unlimited.
	MaxResults int `koanf:"max_results"`
}

type SessionConfig struct {
	// HistoryFile is the readline input-history path. Empty disables
	// input history. Reminders themselves are never persisted.
	HistoryFile string `koanf:"history_file"`
}

// Load layers configuration: built-in defaults, then the YAML file at
// configPath (if it exists), then REMINDME_* environment variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// REMINDME_UI_COLORED_OUTPUT=false -> ui.colored_output
	if err := k.Load(env.Provider("REMINDME_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "REMINDME_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Session.HistoryFile = expandPath(cfg.Session.HistoryFile)

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Search.MaxResults < 0 {
		return fmt.Errorf("search.max_results must not be negative")
	}
	return nil
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
