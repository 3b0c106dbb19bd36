// Package config provides configuration loading for thinkd.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/thinkd/internal/logging"
)

// Config is the top-level thinkd configuration.
type Config struct {
	Server  ServerConfig   `koanf:"server"`
	Logging logging.Config `koanf:"logging"`
}

// ServerConfig configures the MCP server identity and behavior.
type ServerConfig struct {
	// Name is the implementation name advertised during the MCP handshake.
	Name string `koanf:"name"`

	// Version is the advertised server version.
	Version string `koanf:"version"`

	// DisableThoughtLog turns off the per-thought log echo. The zero
	// value keeps logging enabled.
	DisableThoughtLog bool `koanf:"disable_thought_log"`
}

// NewDefaultConfig returns config with defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:    "thinkd",
			Version: "1.0.0",
		},
		Logging: *logging.NewDefaultConfig(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return fmt.Errorf("server.name must not be empty")
	}
	if c.Server.Version == "" {
		return fmt.Errorf("server.version must not be empty")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
