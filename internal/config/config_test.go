package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/losslocator/locator/internal/config"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// Database name and user are required, so every Load test supplies them.
func setDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOCATOR_DB_NAME", "locator_test")
	t.Setenv("LOCATOR_DB_USER", "locator")
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setDatabaseEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, expected 8080", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, expected /api", cfg.API.BasePath)
	}
	if cfg.API.Pagination.DefaultPageSize != 20 {
		t.Errorf("Pagination.DefaultPageSize = %d, expected 20", cfg.API.Pagination.DefaultPageSize)
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, expected 30s", cfg.ShutdownTimeoutDuration())
	}
}

func TestLoadBaseFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `
shutdown_timeout = "45s"
version = "1.2.3"

[server]
port = 9090

[api]
base_path = "/locator"
`)
	t.Chdir(dir)
	setDatabaseEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, expected 9090", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/locator" {
		t.Errorf("API.BasePath = %q, expected /locator", cfg.API.BasePath)
	}
	if cfg.Version != "1.2.3" {
		t.Errorf("Version = %q, expected 1.2.3", cfg.Version)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `
[server]
port = 9090
host = "0.0.0.0"
`)
	writeConfig(t, dir, "config.test.toml", `
[server]
port = 9191
`)
	t.Chdir(dir)
	setDatabaseEnv(t)
	t.Setenv(config.EnvLocatorEnv, "test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, expected overlay value 9191", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, expected base value preserved", cfg.Server.Host)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	setDatabaseEnv(t)
	t.Setenv(config.EnvServerPort, "7070")
	t.Setenv(config.EnvLocatorShutdownTimeout, "10s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, expected env override 7070", cfg.Server.Port)
	}
	if cfg.ShutdownTimeoutDuration() != 10*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, expected 10s", cfg.ShutdownTimeoutDuration())
	}
}

func TestLoadInvalidShutdownTimeout(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `shutdown_timeout = "never"`)
	t.Chdir(dir)
	setDatabaseEnv(t)

	if _, err := config.Load(); err == nil {
		t.Error("Load() succeeded with invalid shutdown_timeout")
	}
}

func TestServerAddr(t *testing.T) {
	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 8080}
	if addr := cfg.Addr(); addr != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, expected 127.0.0.1:8080", addr)
	}
}
