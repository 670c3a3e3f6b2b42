package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dampedfilter/internal/report"
)

func TestConfigLoading(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "results", cfg.ResultsDir)
		assert.Equal(t, "parameters.txt", cfg.ParametersFile)
		assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
		assert.Equal(t, report.Formats, cfg.Formats)
		assert.Equal(t, int64(1<<20), cfg.MaxUploadBytes)
	})

	t.Run("should use environment variables", func(t *testing.T) {
		t.Setenv("DAMPEDFILTER_ADDR", ":9000")
		t.Setenv("DAMPEDFILTER_RESULTS_DIR", "/tmp/out")
		t.Setenv("DAMPEDFILTER_FORMATS", "json,xlsx")
		t.Setenv("DAMPEDFILTER_LOG_LEVEL", "warn")
		t.Setenv("DAMPEDFILTER_MAX_UPLOAD", "2048")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Addr)
		assert.Equal(t, "/tmp/out", cfg.ResultsDir)
		assert.Equal(t, []report.Format{report.FORMAT_JSON, report.FORMAT_XLSX}, cfg.Formats)
		assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
		assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	})

	t.Run("debug forces debug level", func(t *testing.T) {
		t.Setenv("DAMPEDFILTER_DEBUG", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
		assert.Equal(t, logrus.DebugLevel, cfg.NewLogger().GetLevel())
	})
}

func TestConfigErrors(t *testing.T) {
	tests := map[string]string{
		"DAMPEDFILTER_LOG_LEVEL":  "loud",
		"DAMPEDFILTER_FORMATS":    "csv",
		"DAMPEDFILTER_MAX_UPLOAD": "not-a-number",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := Load()
			assert.ErrorContains(t, err, key)
		})
	}
}
