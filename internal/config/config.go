// Package config loads the server configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerSection contains HTTP server configuration.
type ServerSection struct {
	// ListenAddr is the address the server binds to, e.g. ":8080".
	ListenAddr string `yaml:"listen_addr"`
}

// StorageSection contains document and blob storage configuration.
type StorageSection struct {
	// DBPath is the SQLite database file path.
	DBPath string `yaml:"db_path"`

	// BlobRoot is the directory uploaded objects are stored under.
	BlobRoot string `yaml:"blob_root"`

	// BlobURLBase is the public URL prefix objects are served from.
	BlobURLBase string `yaml:"blob_url_base"`
}

// AuthSection contains session token configuration.
type AuthSection struct {
	// JWTSecret signs session tokens. Required.
	JWTSecret string `yaml:"jwt_secret"`

	// TokenTTL is how long session tokens remain valid.
	// Go duration format: "24h", "30m", etc. Defaults to 24h.
	TokenTTL string `yaml:"token_ttl"`
}

// Config is the full server configuration file.
type Config struct {
	Server  ServerSection  `yaml:"server"`
	Storage StorageSection `yaml:"storage"`
	Auth    AuthSection    `yaml:"auth"`

	// LogLevel: debug, info, warn, error (default: info).
	LogLevel string `yaml:"log_level"`
}

// defaults returns a config with every field at its default value.
func defaults() Config {
	return Config{
		Server:   ServerSection{ListenAddr: ":8080"},
		Storage:  StorageSection{DBPath: "./data/circleplus.db", BlobRoot: "./data/blobs", BlobURLBase: "/blobs"},
		Auth:     AuthSection{TokenTTL: "24h"},
		LogLevel: "info",
	}
}

// Load reads the config file at path (skipped if path is empty or the
// file does not exist), then applies environment overrides:
// LISTEN_ADDR, DB_PATH, BLOB_ROOT, BLOB_URL_BASE, JWT_SECRET, TOKEN_TTL,
// LOG_LEVEL.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	override(&cfg.Server.ListenAddr, "LISTEN_ADDR")
	override(&cfg.Storage.DBPath, "DB_PATH")
	override(&cfg.Storage.BlobRoot, "BLOB_ROOT")
	override(&cfg.Storage.BlobURLBase, "BLOB_URL_BASE")
	override(&cfg.Auth.JWTSecret, "JWT_SECRET")
	override(&cfg.Auth.TokenTTL, "TOKEN_TTL")
	override(&cfg.LogLevel, "LOG_LEVEL")

	if cfg.Auth.JWTSecret == "" {
		return cfg, fmt.Errorf("auth.jwt_secret (or JWT_SECRET) is required")
	}
	if _, err := cfg.TokenTTL(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func override(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

// TokenTTL parses the configured token lifetime.
func (c Config) TokenTTL() (time.Duration, error) {
	ttl, err := time.ParseDuration(c.Auth.TokenTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid auth.token_ttl %q: %w", c.Auth.TokenTTL, err)
	}
	return ttl, nil
}
