package config

import (
	"fmt"
	"time"

	"studio/internal/common/fsutil"
)

// Defaults applied by WithDefaults when the corresponding field is unset.
const (
	DefaultAddr         = ":8000"
	DefaultMaxBodyBytes = 1 << 20
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

// Config holds runtime parameters for the front-end.
// Zero values mean "unspecified" and are replaced by WithDefaults.
type Config struct {
	Addr string `json:"addr" yaml:"addr" toml:"addr"`
	// APIBase is the backend base URL. Empty means same-origin: calls go to
	// the origin the page was served from.
	APIBase           string `json:"api_base" yaml:"api_base" toml:"api_base"`
	APITimeoutSeconds int    `json:"api_timeout_seconds" yaml:"api_timeout_seconds" toml:"api_timeout_seconds"`
	// DemoAPI mounts the built-in demo backend under /api. Nil means enabled.
	DemoAPI      *bool    `json:"demo_api" yaml:"demo_api" toml:"demo_api"`
	CatalogPath  string   `json:"catalog_path" yaml:"catalog_path" toml:"catalog_path"`
	MaxBodyBytes int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	LogLevel     string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat    string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	CORSEnabled  bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins  []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	if err := fsutil.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WithDefaults returns cfg with zero values replaced by package defaults.
func WithDefaults(cfg Config) Config {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.DemoAPI == nil {
		on := true
		cfg.DemoAPI = &on
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.APITimeoutSeconds < 0 {
		cfg.APITimeoutSeconds = 0
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.CORSEnabled && len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	return cfg
}

// DemoAPIEnabled reports whether the demo backend should be mounted.
func (c Config) DemoAPIEnabled() bool { return c.DemoAPI == nil || *c.DemoAPI }

// APITimeout returns the per-call backend timeout (0 = none).
func (c Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}
