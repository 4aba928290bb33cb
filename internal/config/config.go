package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the server configuration, read from the environment.
type Config struct {
	Port          string
	DataDir       string
	ImageRoot     string
	PreviewHeight int
	ExportHeight  int
	// FetchTimeout bounds remote image downloads; zero means no limit.
	FetchTimeout time.Duration
	LogLevel     slog.Level
}

// FromEnv reads the configuration using getenv (os.Getenv when nil) and applies defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	var cfg Config
	var err error
	cfg.Port = getenv("PORT")
	cfg.DataDir = getenv("DATA_DIR")
	cfg.ImageRoot = getenv("IMAGE_ROOT")
	if cfg.PreviewHeight, err = intVar(getenv, "PREVIEW_HEIGHT"); err != nil {
		return cfg, err
	}
	if cfg.ExportHeight, err = intVar(getenv, "EXPORT_HEIGHT"); err != nil {
		return cfg, err
	}
	if s := getenv("FETCH_TIMEOUT"); s != "" {
		if cfg.FetchTimeout, err = time.ParseDuration(s); err != nil {
			return cfg, fmt.Errorf("FETCH_TIMEOUT: %w", err)
		}
	}
	if s := getenv("LOG_LEVEL"); s != "" {
		if err = cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
			return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	EnsureDefaults(&cfg)
	return cfg, cfg.Validate()
}

// EnsureDefaults fills unset fields.
func EnsureDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.ImageRoot == "" {
		cfg.ImageRoot = "public"
	}
	if cfg.PreviewHeight == 0 {
		cfg.PreviewHeight = 300
	}
	if cfg.ExportHeight == 0 {
		cfg.ExportHeight = 600
	}
}

func (cfg Config) Validate() error {
	if cfg.PreviewHeight <= 0 || cfg.ExportHeight <= 0 {
		return fmt.Errorf("heights must be positive (preview %d, export %d)", cfg.PreviewHeight, cfg.ExportHeight)
	}
	if cfg.PreviewHeight > cfg.ExportHeight {
		return fmt.Errorf("preview height %d exceeds export height %d", cfg.PreviewHeight, cfg.ExportHeight)
	}
	if cfg.FetchTimeout < 0 {
		return fmt.Errorf("FETCH_TIMEOUT must not be negative")
	}
	return nil
}

// Addr is the listen address.
func (cfg Config) Addr() string {
	return ":" + cfg.Port
}

func intVar(getenv func(string) string, name string) (int, error) {
	s := getenv(name)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
