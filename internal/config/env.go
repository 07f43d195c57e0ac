package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognized by ApplyEnv.
const (
	EnvConfig      = "STUDIO_CONFIG"
	EnvAddr        = "STUDIO_ADDR"
	EnvAPIBase     = "STUDIO_API_BASE"
	EnvAPITimeout  = "STUDIO_API_TIMEOUT_SECONDS"
	EnvDemoAPI     = "STUDIO_DEMO_API"
	EnvCatalog     = "STUDIO_CATALOG"
	EnvLogLevel    = "STUDIO_LOG_LEVEL"
	EnvLogFormat   = "STUDIO_LOG_FORMAT"
	EnvCORSOrigins = "STUDIO_CORS_ORIGINS"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env")
// without overriding variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv overlays STUDIO_* environment variables onto cfg. Unparseable
// numeric or boolean values are ignored.
func ApplyEnv(cfg Config) Config {
	if v, ok := os.LookupEnv(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := os.LookupEnv(EnvAPIBase); ok {
		cfg.APIBase = strings.TrimSpace(v)
	}
	if v := os.Getenv(EnvAPITimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.APITimeoutSeconds = n
		}
	}
	if v := os.Getenv(EnvDemoAPI); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DemoAPI = &b
		}
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		cfg.CORSEnabled = true
		cfg.CORSOrigins = SplitCSV(v)
	}
	return cfg
}

// Resolve builds the effective configuration: .env, then the config file
// (path or $STUDIO_CONFIG, optional), then the environment, then defaults.
func Resolve(path string) (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	var cfg Config
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}
	return WithDefaults(ApplyEnv(cfg)), nil
}

// SplitCSV splits a comma-separated list, trimming blanks.
func SplitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
