package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

// chdirTemp переносит тест в пустой каталог, чтобы случайный .env не подхватился
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "estate-site", cfg.AppName)
	assert.Equal(t, "8080", cfg.Rest.PORT)
	assert.Equal(t, 10*time.Second, cfg.Rest.ShutdownTimeout)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10.0, cfg.RateLimit.RPS)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, int64(1000), cfg.Cache.MaxSize)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, currency.RUB, cfg.Pricing.Currency)
	assert.False(t, cfg.FluentBit.Enabled)
	assert.Equal(t, "debug", cfg.StdoutLogger.Level)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.ru, ,https://b.ru")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("PRICE_CURRENCY", "EUR")
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "fluent-bit")
	t.Setenv("FLUENTBIT_LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Rest.PORT)
	assert.Equal(t, []string{"https://a.ru", "https://b.ru"}, cfg.Rest.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, currency.EUR, cfg.Pricing.Currency)
	assert.True(t, cfg.FluentBit.Enabled)
	assert.Equal(t, "fluent-bit", cfg.FluentBit.Host)
	assert.Equal(t, 24224, cfg.FluentBit.Port)
	assert.Equal(t, "warn", cfg.FluentBit.Level)
}

func TestLoadConfig_FluentBitWithoutHostIsDisabled(t *testing.T) {
	chdirTemp(t)
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.FluentBit.Enabled)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Run("unknown currency", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("PRICE_CURRENCY", "RUBLES")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("non-positive burst", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("RATE_LIMIT_BURST", "0")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unparsable number falls back to default", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("CACHE_MAX_SIZE", "many")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, int64(1000), cfg.Cache.MaxSize)
	})
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=from-file\nHTTP_PORT=7070\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("APP_NAME")
		os.Unsetenv("HTTP_PORT")
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.AppName)
	assert.Equal(t, "7070", cfg.Rest.PORT)

	_, err = LoadConfig(filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}
