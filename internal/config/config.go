// Package config loads bio-browser settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/rcliao/bio-browser/internal/paginate"
)

// Config holds settings shared by every command. Flags override these.
type Config struct {
	DBPath      string        `env:"BIO_BROWSER_DB"`
	Source      string        `env:"BIO_BROWSER_SOURCE"`
	PageSize    int           `env:"BIO_BROWSER_PAGE_SIZE" envDefault:"10"`
	HTTPTimeout time.Duration `env:"BIO_BROWSER_HTTP_TIMEOUT" envDefault:"30s"`
	Verbose     bool          `env:"BIO_BROWSER_VERBOSE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and fills derived defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath()
	}
	cfg.PageSize = paginate.ClampPageSize(cfg.PageSize, paginate.DefaultPageSizeConfig)
	return &cfg, nil
}

// DefaultDBPath is ~/.bio-browser/records.db.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bio-browser", "records.db")
}
