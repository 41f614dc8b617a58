// Package config loads pokerrank settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultAddress     = "localhost"
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultIdleTimeout = 2 * time.Minute
)

// Config is the complete file configuration.
type Config struct {
	Server *ServerSettings `hcl:"server,block"`
	Census *CensusSettings `hcl:"census,block"`
}

// ServerSettings configures the evaluation service.
type ServerSettings struct {
	Address     string `hcl:"address,optional"`
	Port        int    `hcl:"port,optional"`
	LogLevel    string `hcl:"log_level,optional"`
	IdleTimeout string `hcl:"idle_timeout,optional"`
}

// CensusSettings configures the exhaustive enumeration.
type CensusSettings struct {
	Workers int `hcl:"workers,optional"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerSettings{
			Address:     DefaultAddress,
			Port:        DefaultPort,
			LogLevel:    DefaultLogLevel,
			IdleTimeout: DefaultIdleTimeout.String(),
		},
		Census: &CensusSettings{
			Workers: runtime.NumCPU(),
		},
	}
}

// LoadConfig reads an HCL file. A missing file yields DefaultConfig, and
// any attribute or block left out of the file keeps its default.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Server == nil {
		c.Server = defaults.Server
	}
	if c.Census == nil {
		c.Census = defaults.Census
	}

	if c.Server.Address == "" {
		c.Server.Address = defaults.Server.Address
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaults.Server.Port
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = defaults.Server.LogLevel
	}
	if c.Server.IdleTimeout == "" {
		c.Server.IdleTimeout = defaults.Server.IdleTimeout
	}
	if c.Census.Workers == 0 {
		c.Census.Workers = defaults.Census.Workers
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Server == nil || c.Census == nil {
		return fmt.Errorf("server and census blocks are required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Server.LogLevel)
	}
	if _, err := c.IdleTimeout(); err != nil {
		return err
	}
	if c.Census.Workers < 1 {
		return fmt.Errorf("census workers must be positive, got %d", c.Census.Workers)
	}
	return nil
}

// IdleTimeout parses the server idle_timeout.
func (c *Config) IdleTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Server.IdleTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid idle timeout %q: %w", c.Server.IdleTimeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("idle timeout must be positive, got %s", d)
	}
	return d, nil
}

// ServerAddress returns the host:port to listen on.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
