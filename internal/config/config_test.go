package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadDefaults tests that default configuration values are loaded correctly.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Expected default server host '0.0.0.0', got '%s'", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default server port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Expected default read timeout 30s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected default shutdown timeout 10s, got %v", cfg.Server.ShutdownTimeout)
	}

	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Expected default database driver 'sqlite', got '%s'", cfg.Database.Driver)
	}
	if cfg.Database.DSN != "rackd.db" {
		t.Errorf("Expected default dsn 'rackd.db', got '%s'", cfg.Database.DSN)
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Errorf("Expected default max open conns 10, got %d", cfg.Database.MaxOpenConns)
	}

	if cfg.Inventory.EnforceOverlap {
		t.Error("Expected overlap enforcement off by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default logging level 'info', got '%s'", cfg.Logging.Level)
	}

	if cfg.Security.RateLimit != 100 {
		t.Errorf("Expected default rate limit 100, got %d", cfg.Security.RateLimit)
	}
	if cfg.Security.AuthEnabled {
		t.Error("Expected auth disabled by default")
	}
	if cfg.Security.JWTExpiration != 24*time.Hour {
		t.Errorf("Expected default jwt expiration 24h, got %v", cfg.Security.JWTExpiration)
	}
}

// TestLoadFromFile tests loading configuration from a YAML file.
func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
server:
  port: 9090
  debug: true
database:
  driver: postgres
  dsn: "host=localhost user=rackd dbname=rackd"
inventory:
  enforce_overlap: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if !cfg.Server.Debug {
		t.Error("Expected debug true")
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Expected driver postgres, got %s", cfg.Database.Driver)
	}
	if !cfg.Inventory.EnforceOverlap {
		t.Error("Expected overlap enforcement enabled")
	}
}

// TestValidateRejectsBadDriver tests configuration validation.
func TestValidateRejectsBadDriver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
database:
  driver: oracle
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for unsupported driver")
	}
}

// TestValidateRejectsBadPort tests port range validation.
func TestValidateRejectsBadPort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
server:
  port: 70000
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for out-of-range port")
	}
}
