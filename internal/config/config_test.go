package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "local")
	t.Setenv("DB_SERVER", "localhost:3306")
	t.Setenv("DB_NAME", "esp")
	t.Setenv("DB_USER", "esp")
	t.Setenv("DB_PASSWORD", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "3000", cfg.HttpServer.Port)
	assert.Equal(t, []string{"*"}, cfg.HttpServer.CORSOrigins)
	assert.Equal(t, "api.mailchimp.com", cfg.ESP.MailchimpDomain)
	assert.Equal(t, "https://api.getresponse.com/v3", cfg.ESP.GetResponseBaseURL)
	assert.Equal(t, 30*time.Second, cfg.ESP.RequestTimeout)
	assert.Equal(t, 1000, cfg.ESP.ListsPageSize)
	assert.Equal(t, 10, cfg.ESP.StatsConcurrency)
	assert.True(t, cfg.Database.Migrate)
	assert.False(t, cfg.Worker.Enabled)
	assert.Equal(t, "@every 6h", cfg.Worker.VerifyCron)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ESP_STATS_CONCURRENCY", "3")
	t.Setenv("ESP_REQUEST_TIMEOUT", "5s")
	t.Setenv("WORKER_ENABLED", "true")
	t.Setenv("HTTP_CORS_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.ESP.StatsConcurrency)
	assert.Equal(t, 5*time.Second, cfg.ESP.RequestTimeout)
	assert.True(t, cfg.Worker.Enabled)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.HttpServer.CORSOrigins)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	// t.Setenv restores the variable after the test, Unsetenv makes it absent.
	require.NoError(t, os.Unsetenv("ENV"))

	_, err := Load()
	assert.Error(t, err)
}
