package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Zero(t, cfg.Temperature)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "http://127.0.0.1:8080/v1")
	t.Setenv("CHAT_MODEL", "gpt-4o")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "http://127.0.0.1:8080/v1", cfg.BaseURL)
	assert.Equal(t, "gpt-4o", cfg.Model)
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.yaml")
	content := []byte("model: gpt-4o\ntemperature: 0.3\nsystem_prompt: be brief\nlogging:\n  level: debug\n  format: json\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.InDelta(t, 0.3, float64(cfg.Temperature), 0.001)
	assert.Equal(t, "be brief", cfg.SystemPrompt)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := &Config{Model: "gpt-4o-mini"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestValidateRejectsBadTemperature(t *testing.T) {
	cfg := &Config{APIKey: "sk-test", Temperature: 1.5}
	assert.Error(t, cfg.Validate())

	cfg.Temperature = 0.7
	assert.NoError(t, cfg.Validate())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(Logging{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger, err = NewLogger(Logging{Level: "info", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewLoggerRejectsBadSettings(t *testing.T) {
	_, err := NewLogger(Logging{Level: "verbose", Format: "console"})
	assert.Error(t, err)

	_, err = NewLogger(Logging{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
