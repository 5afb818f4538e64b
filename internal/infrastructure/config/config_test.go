package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TELEGRAM_TOKEN", "TELEGRAM_API_URL", "POLLING_TIMEOUT", "HISTORY_SIZE",
		"REDIS_ENABLED", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "DB_ENABLED", "DB_NAME",
		"LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_MissingFileUsesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "https://api.telegram.org/bot123:abc/", cfg.GetBotAPIBaseURL())
	assert.Equal(t, 30, cfg.Telegram.PollingTimeout)
	assert.Equal(t, 10, cfg.HistorySize)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoadConfig_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv не перезаписывает уже выставленные переменные
	os.Unsetenv("TELEGRAM_TOKEN")
	os.Unsetenv("HISTORY_SIZE")
	t.Cleanup(func() {
		os.Unsetenv("TELEGRAM_TOKEN")
		os.Unsetenv("HISTORY_SIZE")
	})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TELEGRAM_TOKEN=from-file\nHISTORY_SIZE=5\n"), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Telegram.BotToken)
	assert.Equal(t, 5, cfg.HistorySize)
}

func TestValidate_MissingTokenIsConfigurationMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigurationMissing)
	assert.Contains(t, err.Error(), "TELEGRAM_TOKEN")
}

func TestValidate_DatabaseRequiresName(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "t")
	t.Setenv("DB_ENABLED", "true")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), ErrConfigurationMissing)
}

func TestValidate_RejectsNonPositiveHistory(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "t")
	t.Setenv("HISTORY_SIZE", "0")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}
