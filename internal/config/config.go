package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	SessionsRoot    string `toml:"sessions_root"`
	DatePageSize    int    `toml:"date_page_size"`
	SessionPageSize int    `toml:"session_page_size"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		SessionsRoot:    filepath.Join(home, ".codex", "sessions"),
		DatePageSize:    15,
		SessionPageSize: 10,
	}

	cfgPath := filepath.Join(home, ".config", "cohistory", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.SessionsRoot = expandHome(cfg.SessionsRoot, home)

	if cfg.DatePageSize < 1 {
		cfg.DatePageSize = 15
	}
	if cfg.SessionPageSize < 1 {
		cfg.SessionPageSize = 10
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
