package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with secret from env", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "env-secret")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Server.ListenAddr != ":8080" {
			t.Errorf("Expected default listen addr, got %q", cfg.Server.ListenAddr)
		}
		if cfg.Auth.JWTSecret != "env-secret" {
			t.Errorf("Expected env secret, got %q", cfg.Auth.JWTSecret)
		}
		ttl, err := cfg.TokenTTL()
		if err != nil {
			t.Fatalf("TokenTTL failed: %v", err)
		}
		if ttl != 24*time.Hour {
			t.Errorf("Expected 24h default TTL, got %v", ttl)
		}
	})

	t.Run("missing secret is an error", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		if _, err := Load(""); err == nil {
			t.Error("Expected an error without a JWT secret")
		}
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := []byte(`
server:
  listen_addr: ":9999"
storage:
  db_path: /tmp/app.db
auth:
  jwt_secret: file-secret
  token_ttl: 30m
log_level: debug
`)
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Server.ListenAddr != ":9999" {
			t.Errorf("Expected yaml listen addr, got %q", cfg.Server.ListenAddr)
		}
		if cfg.Storage.DBPath != "/tmp/app.db" {
			t.Errorf("Expected yaml db path, got %q", cfg.Storage.DBPath)
		}
		if cfg.Storage.BlobRoot != "./data/blobs" {
			t.Errorf("Expected default blob root, got %q", cfg.Storage.BlobRoot)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Expected yaml log level, got %q", cfg.LogLevel)
		}
		if ttl, _ := cfg.TokenTTL(); ttl != 30*time.Minute {
			t.Errorf("Expected 30m TTL, got %v", ttl)
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("auth:\n  jwt_secret: file-secret\n"), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		t.Setenv("JWT_SECRET", "env-wins")
		t.Setenv("LISTEN_ADDR", ":7070")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Auth.JWTSecret != "env-wins" {
			t.Errorf("Expected env override, got %q", cfg.Auth.JWTSecret)
		}
		if cfg.Server.ListenAddr != ":7070" {
			t.Errorf("Expected env listen addr, got %q", cfg.Server.ListenAddr)
		}
	})

	t.Run("bad ttl is an error", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		t.Setenv("TOKEN_TTL", "not-a-duration")

		if _, err := Load(""); err == nil {
			t.Error("Expected an error for an unparseable TTL")
		}
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")

		if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
			t.Errorf("Expected missing file to be skipped, got %v", err)
		}
	})
}
