package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "pretty", cfg.Logging.Style)
	assert.True(t, cfg.Logging.Echo())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadValidYAML(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  output: host
  style: json
  echoStderr: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "host", cfg.Logging.Output)
	assert.Equal(t, "json", cfg.Logging.Style)
	assert.False(t, cfg.Logging.Echo())
}

func TestLoadPartialAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "pretty", cfg.Logging.Style)
	assert.True(t, cfg.Logging.Echo())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "logging: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XPSHIM_LOG_LEVEL", "ERROR")
	t.Setenv("XPSHIM_LOG_OUTPUT", "stderr")
	path := writeConfig(t, "logging:\n  level: debug\n  output: host\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadEnvOverridesWithoutFile(t *testing.T) {
	t.Setenv("XPSHIM_LOG_LEVEL", "trace")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Logging.Level)
}

func TestMarshalRoundTripsLevel(t *testing.T) {
	out, err := Marshal(Defaults())
	require.NoError(t, err)
	assert.Contains(t, string(out), "level: info")
	assert.Contains(t, string(out), "output: stderr")
}

func TestResolvePath(t *testing.T) {
	t.Run("explicit config", func(t *testing.T) {
		t.Setenv("XPSHIM_CONFIG", "/tmp/custom.yaml")
		p, err := ResolvePath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.yaml", p)
	})

	t.Run("home override", func(t *testing.T) {
		t.Setenv("XPSHIM_CONFIG", "")
		dir := t.TempDir()
		t.Setenv("XPSHIM_HOME", dir)
		p, err := ResolvePath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "config.yaml"), p)
	})

	t.Run("user home", func(t *testing.T) {
		t.Setenv("XPSHIM_CONFIG", "")
		t.Setenv("XPSHIM_HOME", "")
		home := t.TempDir()
		t.Setenv("HOME", home)
		p, err := ResolvePath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".xpshim", "config.yaml"), p)
	})
}
