package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokerrank.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "localhost:8080", cfg.ServerAddress())
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, runtime.NumCPU(), cfg.Census.Workers)

	timeout, err := cfg.IdleTimeout()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, timeout)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server {
  address      = "0.0.0.0"
  port         = 9090
  log_level    = "debug"
  idle_timeout = "30s"
}

census {
  workers = 3
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:9090", cfg.ServerAddress())
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 3, cfg.Census.Workers)

	timeout, err := cfg.IdleTimeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, timeout)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, `
server {
  port = 7000
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:7000", cfg.ServerAddress())
	assert.Equal(t, DefaultLogLevel, cfg.Server.LogLevel)
	assert.Equal(t, "2m0s", cfg.Server.IdleTimeout)
	require.NotNil(t, cfg.Census)
	assert.Equal(t, runtime.NumCPU(), cfg.Census.Workers)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax error", `server {`},
		{"unknown attribute", `server { colour = "red" }`},
		{"wrong type", `server { port = "eighty" }`},
		{"unknown block", `table "main" {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }, "invalid port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "invalid port"},
		{"bad log level", func(c *Config) { c.Server.LogLevel = "loud" }, "invalid log level"},
		{"unparseable timeout", func(c *Config) { c.Server.IdleTimeout = "soon" }, "invalid idle timeout"},
		{"negative timeout", func(c *Config) { c.Server.IdleTimeout = "-1s" }, "must be positive"},
		{"no workers", func(c *Config) { c.Census.Workers = 0 }, "workers must be positive"},
		{"missing block", func(c *Config) { c.Census = nil }, "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}
