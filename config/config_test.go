package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SCRAPER_MAX_PAGES", "SCRAPER_TIMEOUT_SECONDS", "DATABASE_PATH",
		"SCRAPER_TABLE", "SUMMARY_TAIL", "CHECK_INTERVAL_MINUTES",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID",
	} {
		t.Setenv(key, "")
	}
	// SCRAPER_BASE_URL vazio é erro, então a variável precisa sumir
	t.Setenv("SCRAPER_BASE_URL", "")
	os.Unsetenv("SCRAPER_BASE_URL")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, cfg.BaseURL)
	require.Equal(t, 20, cfg.MaxPages)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "./scraper.db", cfg.DatabasePath)
	require.Equal(t, "offers", cfg.TableName)
	require.Equal(t, 10, cfg.TailSize)
	require.Equal(t, 30*time.Minute, cfg.CheckInterval)
	require.Empty(t, cfg.TelegramBotToken)
	require.Zero(t, cfg.TelegramChatID)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCRAPER_BASE_URL", "http://localhost/ofertas?page=")
	t.Setenv("SCRAPER_MAX_PAGES", "3")
	t.Setenv("SCRAPER_TIMEOUT_SECONDS", "5")
	t.Setenv("DATABASE_PATH", "/tmp/x.db")
	t.Setenv("SCRAPER_TABLE", "ofertas_2024")
	t.Setenv("CHECK_INTERVAL_MINUTES", "1")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost/ofertas?page=", cfg.BaseURL)
	require.Equal(t, 3, cfg.MaxPages)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/x.db", cfg.DatabasePath)
	require.Equal(t, "ofertas_2024", cfg.TableName)
	require.Equal(t, time.Minute, cfg.CheckInterval)
	require.Equal(t, int64(-100123), cfg.TelegramChatID)
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCRAPER_MAX_PAGES", "abc")
	t.Setenv("SUMMARY_TAIL", "-4")
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultMaxPages, cfg.MaxPages)
	require.Equal(t, DefaultTailSize, cfg.TailSize)
	require.Zero(t, cfg.TelegramChatID)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCRAPER_TABLE", "offers; DROP TABLE offers")
	_, err := Load()
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("SCRAPER_BASE_URL", "")
	_, err = Load()
	require.Error(t, err)
}

func TestValidateTableName(t *testing.T) {
	require.NoError(t, ValidateTableName("offers"))
	require.NoError(t, ValidateTableName("_hist_2"))
	require.Error(t, ValidateTableName(""))
	require.Error(t, ValidateTableName("2offers"))
	require.Error(t, ValidateTableName("off-ers"))
}
