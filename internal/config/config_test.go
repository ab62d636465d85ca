package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("INGEST_API_BASE", "https://colab.example.com/")
	t.Setenv("PRESENTON_API_KEY", "key")
	t.Setenv("PRESENTON_API_BASE", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("ENV", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.TelegramToken)
	assert.Equal(t, "https://colab.example.com", cfg.IngestAPIBase, "замыкающий слэш убирается")
	assert.Equal(t, defaultPresentonAPIBase, cfg.PresentonAPIBase)
	assert.Equal(t, defaultHTTPTimeout, cfg.HTTPTimeout)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_TIMEOUT", "30")
	t.Setenv("ENV", "production")
	t.Setenv("METRICS_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.HTTPTimeout)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoadMissingRequired(t *testing.T) {
	for _, key := range []string{"TELEGRAM_TOKEN", "INGEST_API_BASE", "PRESENTON_API_KEY"} {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_TIMEOUT", "abc")

	_, err := Load()
	require.Error(t, err)
}
