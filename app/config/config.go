// Package config loads the inkpress configuration from an optional YAML file,
// a .env file and INKPRESS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no configuration file is given. It may be absent.
const DefaultPath = "inkpress.yaml"

// Storage backends.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Site    SiteConfig    `yaml:"site"`
}

type ServerConfig struct {
	Addr      string `yaml:"addr"`       // listen address, e.g. ":8080"
	APIPrefix string `yaml:"api_prefix"` // path the JSON API is mounted under
}

type StorageConfig struct {
	Backend string `yaml:"backend"`  // file, badger or sqlite
	DataDir string `yaml:"data_dir"` // directory holding all stored data
	Seed    bool   `yaml:"seed"`     // write sample posts into an empty store
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// SiteConfig describes the blog in its feeds.
type SiteConfig struct {
	URL         string `yaml:"url"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":8080",
			APIPrefix: "/api",
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			DataDir: "data",
			Seed:    true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Site: SiteConfig{
			URL:         "http://localhost:8080",
			Title:       "Inkpress",
			Description: "Latest posts",
		},
	}
}

// Load builds the configuration. Values from the YAML file at path override
// the defaults and INKPRESS_* environment variables override both. An empty
// path reads DefaultPath if it exists.
func Load(path string) (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	// #nosec G304 -- path is provided by the operator
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setFromEnv("INKPRESS_ADDR", &c.Server.Addr)
	setFromEnv("INKPRESS_API_PREFIX", &c.Server.APIPrefix)
	setFromEnv("INKPRESS_STORAGE_BACKEND", &c.Storage.Backend)
	setFromEnv("INKPRESS_DATA_DIR", &c.Storage.DataDir)
	setFromEnv("INKPRESS_LOG_LEVEL", &c.Log.Level)
	setFromEnv("INKPRESS_LOG_FORMAT", &c.Log.Format)
	setFromEnv("INKPRESS_SITE_URL", &c.Site.URL)
	setFromEnv("INKPRESS_SITE_TITLE", &c.Site.Title)

	if value := os.Getenv("INKPRESS_SEED"); value != "" {
		seed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("INKPRESS_SEED must be a boolean, got %q", value)
		}
		c.Storage.Seed = seed
	}
	return nil
}

func setFromEnv(key string, target *string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}
	prefix := c.Server.APIPrefix
	if len(prefix) < 2 || !strings.HasPrefix(prefix, "/") || strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("server.api_prefix must start with / and not end with /, got %q", prefix)
	}

	switch c.Storage.Backend {
	case BackendFile, BackendBadger, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage.backend: %s (must be file, badger or sqlite)", c.Storage.Backend)
	}
	if c.Storage.DataDir == "" {
		return fmt.Errorf("storage.data_dir cannot be empty")
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if u, err := url.Parse(c.Site.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("site.url must be an absolute URL, got %q", c.Site.URL)
	}
	return nil
}

// SlogLevel parses the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level must be debug, info, warn or error, got %q", l.Level)
	}
	return level, nil
}

// Path returns where the configured backend keeps its data.
func (s StorageConfig) Path() string {
	switch s.Backend {
	case BackendBadger:
		return filepath.Join(s.DataDir, "badger")
	case BackendSQLite:
		return filepath.Join(s.DataDir, "inkpress.db")
	default:
		return s.DataDir
	}
}

// BackupDir is where database backups are written.
func (s StorageConfig) BackupDir() string {
	return filepath.Join(s.DataDir, "backups")
}
