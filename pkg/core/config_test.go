// pkg/core/config_test.go
package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv(RootPrefixEnv, "")

	cfg := DefaultConfig()
	assert.Empty(t, cfg.RootPrefix)
	assert.Empty(t, cfg.Executable)
	assert.True(t, cfg.DiscoverRootPrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfig_EnvRootPrefix(t *testing.T) {
	t.Setenv(RootPrefixEnv, "/srv/miniconda")
	assert.Equal(t, "/srv/miniconda", DefaultConfig().RootPrefix)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv(RootPrefixEnv, "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv(RootPrefixEnv, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
root_prefix: /opt/miniforge
executable: mamba
log_level: debug
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/miniforge", cfg.RootPrefix)
	assert.Equal(t, "mamba", cfg.Executable)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DiscoverRootPrefix, "unset keys keep their defaults")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv(RootPrefixEnv, "/from/env")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root_prefix: /from/file\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.RootPrefix)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()

	badLevel := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(badLevel, []byte("log_level: verbose\n"), 0o644))
	_, err := LoadConfig(badLevel)
	assert.ErrorContains(t, err, "invalid config")

	badYAML := filepath.Join(dir, "yaml.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("root_prefix: [unterminated\n"), 0o644))
	_, err = LoadConfig(badYAML)
	assert.ErrorContains(t, err, "parsing config")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv(RootPrefixEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.RootPrefix = "/opt/conda"
	cfg.Executable = "micromamba"
	cfg.DiscoverRootPrefix = false
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveConfig_RejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"

	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.Error(t, SaveConfig(cfg, path))
	assert.NoFileExists(t, path)
}
