package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/engine/gateway"
	mcpconfig "github.com/compozy/monday-mcp/pkg/mcp"
	"github.com/spf13/viper"
)

const (
	defaultConfigFileName = "monday-mcp"
	defaultConfigType     = "yaml"
	defaultWorkspaceURL   = "https://monday.com"
)

// ConfigError represents a configuration validation error
type ConfigError = mcpconfig.ConfigError

// Config represents the application configuration
type Config struct {
	Monday MondayConfig     `mapstructure:"monday"`
	Log    LogConfig        `mapstructure:"log"`
	MCP    mcpconfig.Config `mapstructure:"mcp"`
}

// MondayConfig represents monday.com API access
type MondayConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	APIURL        string        `mapstructure:"api_url"`
	APIVersion    string        `mapstructure:"api_version"`
	WorkspaceName string        `mapstructure:"workspace_name"`
	WorkspaceURL  string        `mapstructure:"workspace_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Monday: MondayConfig{
			APIURL:     gateway.DefaultAPIURL,
			APIVersion: gateway.DefaultAPIVersion,
			Timeout:    gateway.DefaultTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		MCP: *mcpconfig.DefaultConfig(),
	}
}

// SetDefaults registers every key with its default so that environment
// variables are honored when unmarshaling. Keys map to variables by
// upper-casing and replacing dots with underscores (monday.api_key is
// MONDAY_API_KEY).
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("monday.api_key", d.Monday.APIKey)
	v.SetDefault("monday.api_url", d.Monday.APIURL)
	v.SetDefault("monday.api_version", d.Monday.APIVersion)
	v.SetDefault("monday.workspace_name", d.Monday.WorkspaceName)
	v.SetDefault("monday.workspace_url", d.Monday.WorkspaceURL)
	v.SetDefault("monday.timeout", d.Monday.Timeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("mcp.server.name", d.MCP.Server.Name)
	v.SetDefault("mcp.server.transport", d.MCP.Server.Transport)
	v.SetDefault("mcp.server.host", d.MCP.Server.Host)
	v.SetDefault("mcp.server.port", d.MCP.Server.Port)
	v.SetDefault("mcp.features.validate_documents", d.MCP.Features.ValidateDocuments)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing precedence.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	SetDefaults(v)

	if configPath == "" {
		candidate := filepath.Join(".", defaultConfigFileName+"."+defaultConfigType)
		if _, err := os.Stat(candidate); err == nil {
			configPath = candidate
		}
	}
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, core.NewError(fmt.Errorf("config file %s: %w", configPath, err), core.ErrorCodeConfigInvalid, nil)
		}
		v.SetConfigFile(configPath)
		v.SetConfigType(defaultConfigType)
		if err := v.ReadInConfig(); err != nil {
			return nil, core.NewError(fmt.Errorf("failed to read config file: %w", err), core.ErrorCodeConfigInvalid, nil)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, core.NewError(fmt.Errorf("failed to unmarshal config: %w", err), core.ErrorCodeConfigInvalid, nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, core.NewError(fmt.Errorf("invalid config: %w", err), core.ErrorCodeConfigInvalid, nil)
	}
	return cfg, nil
}

// Validate ensures the configuration is usable. The API key is checked
// separately because catalog commands run without it.
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.Monday.APIURL); err != nil {
		return &ConfigError{Field: "monday.api_url", Message: "api_url must be an absolute URL"}
	}
	if c.Monday.Timeout <= 0 {
		return &ConfigError{Field: "monday.timeout", Message: "timeout must be positive"}
	}
	if c.Monday.WorkspaceURL != "" {
		if _, err := url.ParseRequestURI(c.Monday.WorkspaceURL); err != nil {
			return &ConfigError{Field: "monday.workspace_url", Message: "workspace_url must be an absolute URL"}
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json", "logfmt":
	default:
		return &ConfigError{Field: "log.format", Message: "format must be text, json or logfmt"}
	}
	return c.MCP.Validate()
}

// RequireAPIKey fails when no API key is configured
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.Monday.APIKey) == "" {
		return core.NewError(
			&ConfigError{Field: "monday.api_key", Message: "set MONDAY_API_KEY or monday.api_key"},
			core.ErrorCodeConfigInvalid, nil,
		)
	}
	return nil
}

// WorkspaceURL returns the base URL used for links to boards and docs. An
// explicit workspace_url wins over one derived from workspace_name.
func (c *Config) WorkspaceURL() string {
	if c.Monday.WorkspaceURL != "" {
		return strings.TrimRight(c.Monday.WorkspaceURL, "/")
	}
	if name := strings.TrimSpace(c.Monday.WorkspaceName); name != "" {
		return fmt.Sprintf("https://%s.monday.com", name)
	}
	return defaultWorkspaceURL
}

// Gateway returns the API client settings
func (c *Config) Gateway() gateway.Config {
	return gateway.Config{
		APIURL:            c.Monday.APIURL,
		APIKey:            c.Monday.APIKey,
		APIVersion:        c.Monday.APIVersion,
		Timeout:           c.Monday.Timeout,
		ValidateDocuments: c.MCP.Features.ValidateDocuments,
	}
}
