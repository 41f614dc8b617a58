package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lox/pokerrank/internal/config"
	"github.com/lox/pokerrank/internal/server"
)

// ServeCmd runs the evaluation service.
type ServeCmd struct {
	Config      string        `short:"c" default:"pokerrank.hcl" help:"Path to HCL configuration file"`
	Addr        string        `short:"a" help:"Address to bind to (overrides config)"`
	Port        int           `short:"p" help:"Port to listen on (overrides config)"`
	LogLevel    string        `short:"l" help:"Log level (overrides config)"`
	IdleTimeout time.Duration `help:"Close WebSocket connections idle for this long (overrides config)"`
}

// load reads the config file and applies flag overrides.
func (c *ServeCmd) load() (*config.Config, error) {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return nil, err
	}

	if c.Addr != "" {
		cfg.Server.Address = c.Addr
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if c.LogLevel != "" {
		cfg.Server.LogLevel = c.LogLevel
	}
	if c.IdleTimeout != 0 {
		cfg.Server.IdleTimeout = c.IdleTimeout.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *ServeCmd) Run() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	idle, err := cfg.IdleTimeout()
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg.Server.LogLevel)
	s := server.NewServer(logger, server.WithIdleTimeout(idle))

	ctx, cancel := signalContext(logger)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- s.Start(cfg.ServerAddress())
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
