package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, ":8090", cfg.ListenAddr)
		assert.Equal(t, 10, cfg.HTTPTimeoutSeconds)
		assert.Empty(t, cfg.ChatBaseURL)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("CHAT_BASE_URL", "http://chat.local")
		t.Setenv("LISTEN_ADDR", ":9000")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "3")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "http://chat.local", cfg.ChatBaseURL)
		assert.Equal(t, ":9000", cfg.ListenAddr)
		assert.Equal(t, 3, cfg.HTTPTimeoutSeconds)
	})

	t.Run("rejects bad timeout", func(t *testing.T) {
		t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")
		_, err := Load()
		require.Error(t, err)

		t.Setenv("HTTP_TIMEOUT_SECONDS", "-1")
		_, err = Load()
		require.Error(t, err)
	})
}
