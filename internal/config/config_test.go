package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp changes into a fresh temp directory for the duration of the
// test; t.Chdir requires Go 1.24, which is newer than this toolchain.
func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestInitializeConfigDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "categories.json", cfg.Store.File)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("BANKSTMT_LOG_LEVEL", "debug")
	t.Setenv("BANKSTMT_STORE_FILE", "rules/categories.json")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "rules/categories.json", cfg.Store.File)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ",," }, true},
		{"empty store file", func(c *Config) { c.Store.File = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Log.Level = "info"
			cfg.Log.Format = "text"
			cfg.Store.File = "categories.json"
			cfg.CSV.Delimiter = ","
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.Level)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
