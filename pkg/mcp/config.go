package mcp

import (
	"fmt"
	"net"
	"strconv"
)

// Transport names
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config represents the MCP server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"   mapstructure:"server"`
	Features FeaturesConfig `yaml:"features" mapstructure:"features"`
}

// ServerConfig defines server settings
type ServerConfig struct {
	Name      string `yaml:"name"      mapstructure:"name"`
	Transport string `yaml:"transport" mapstructure:"transport"`
	Host      string `yaml:"host"      mapstructure:"host"`
	Port      int    `yaml:"port"      mapstructure:"port"`
}

// FeaturesConfig defines feature toggles
type FeaturesConfig struct {
	ValidateDocuments bool `yaml:"validate_documents" mapstructure:"validate_documents"`
}

// DefaultConfig returns default MCP configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:      "monday-mcp",
			Transport: TransportStdio,
			Host:      "localhost",
			Port:      8080,
		},
		Features: FeaturesConfig{
			ValidateDocuments: true,
		},
	}
}

// Address returns host:port for network transports
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// BaseURL returns the public URL of the SSE endpoint
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s", c.Address())
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return &ConfigError{Field: "server.name", Message: "name cannot be empty"}
	}
	switch c.Server.Transport {
	case TransportStdio:
		return nil
	case TransportSSE:
	default:
		return &ConfigError{Field: "server.transport", Message: "transport must be stdio or sse"}
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port must be between 1 and 65535"}
	}
	if c.Server.Host == "" {
		return &ConfigError{Field: "server.host", Message: "host cannot be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config validation error: " + e.Field + " - " + e.Message
}
