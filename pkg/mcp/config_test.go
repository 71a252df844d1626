package mcp_test

import (
	"testing"

	"github.com/compozy/monday-mcp/pkg/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Run("Should return valid default configuration", func(t *testing.T) {
		config := mcp.DefaultConfig()

		assert.NotNil(t, config)
		assert.Equal(t, "monday-mcp", config.Server.Name)
		assert.Equal(t, mcp.TransportStdio, config.Server.Transport)
		assert.Equal(t, "localhost", config.Server.Host)
		assert.Equal(t, 8080, config.Server.Port)
		assert.True(t, config.Features.ValidateDocuments)
		assert.NoError(t, config.Validate())
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Should reject empty name", func(t *testing.T) {
		config := mcp.DefaultConfig()
		config.Server.Name = ""
		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("Should reject unknown transports", func(t *testing.T) {
		config := mcp.DefaultConfig()
		config.Server.Transport = "websocket"
		err := config.Validate()
		var configErr *mcp.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "server.transport", configErr.Field)
	})

	t.Run("Should ignore host and port for stdio", func(t *testing.T) {
		config := mcp.DefaultConfig()
		config.Server.Port = 0
		config.Server.Host = ""
		assert.NoError(t, config.Validate())
	})

	t.Run("Should reject invalid port for sse", func(t *testing.T) {
		config := mcp.DefaultConfig()
		config.Server.Transport = mcp.TransportSSE
		config.Server.Port = 70000
		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "port must be between 1 and 65535")
	})

	t.Run("Should reject empty host for sse", func(t *testing.T) {
		config := mcp.DefaultConfig()
		config.Server.Transport = mcp.TransportSSE
		config.Server.Host = ""
		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "host cannot be empty")
	})
}

func TestConfig_Address(t *testing.T) {
	t.Run("Should join host and port", func(t *testing.T) {
		config := mcp.DefaultConfig()
		config.Server.Host = "0.0.0.0"
		config.Server.Port = 9090
		assert.Equal(t, "0.0.0.0:9090", config.Address())
		assert.Equal(t, "http://0.0.0.0:9090", config.BaseURL())
	})
}
