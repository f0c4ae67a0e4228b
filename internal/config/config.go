package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sethvargo/go-envconfig"
)

// Config captures everything alcove needs to reach the catalogue backend.
// Values come from the TOML config file and may be overridden per-field by
// ALCOVE_* environment variables.
type Config struct {
	ServerURL      string `toml:"server_url"      env:"ALCOVE_SERVER_URL"`
	TimeoutSeconds int    `toml:"timeout_seconds" env:"ALCOVE_TIMEOUT_SECONDS"`
	LogLevel       string `toml:"log_level"       env:"ALCOVE_LOG_LEVEL"`
	LogDir         string `toml:"log_dir"         env:"ALCOVE_LOG_DIR"`
}

const (
	defaultConfigPath = "~/.config/alcove/config.toml"
	defaultServerURL  = "http://127.0.0.1:8000"
	defaultTimeout    = 10
	defaultLogLevel   = "info"
	defaultLogDir     = "~/.local/state/alcove"
)

// Load locates and parses the config file, applies environment overrides,
// and falls back to defaults when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ServerURL:      defaultServerURL,
		TimeoutSeconds: defaultTimeout,
		LogLevel:       defaultLogLevel,
		LogDir:         defaultLogDir,
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return Config{}, fmt.Errorf("apply env overrides: %w", err)
	}

	cfg.ServerURL = strings.TrimSpace(cfg.ServerURL)
	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultServerURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeout
	}
	cfg.LogLevel = strings.TrimSpace(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	cfg.LogDir = strings.TrimSpace(cfg.LogDir)
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	return cfg, nil
}

// Timeout returns the per-request timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogPath returns the path of alcove's own log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return filepath.Join(mustExpand(defaultLogDir), "alcove.log")
	}
	return filepath.Join(c.LogDir, "alcove.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
