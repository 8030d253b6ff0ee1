package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no user config and a
// clean macchiato environment.
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tempDir, "home"))
	for _, key := range []string{"MACCHIATO_NO_COLOR", "NO_COLOR", "MACCHIATO_DEBUG", "MACCHIATO_CONFIG"} {
		t.Setenv(key, "")
	}
	return tempDir
}

func TestGetConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(FileName, []byte("table: true\n"), 0o600))

	assert.Equal(t, FileName, getConfigPath())
}

func TestGetConfigPath_UsesUserConfigDir_When_LocalMissing(t *testing.T) {
	dir := isolate(t)
	configHome := filepath.Join(dir, "xdg", "macchiato")
	require.NoError(t, os.MkdirAll(configHome, 0o755))
	configPath := filepath.Join(configHome, FileName)
	require.NoError(t, os.WriteFile(configPath, []byte("debug: true\n"), 0o600))

	assert.Equal(t, configPath, getConfigPath())
}

func TestGetConfigPath_ReturnsEmpty_When_NoConfigAvailable(t *testing.T) {
	isolate(t)
	assert.Empty(t, getConfigPath())
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, path, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Nil(t, cfg.NoColor)
	assert.Equal(t, DefaultTableWidth, cfg.TableWidth)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(p, []byte("no_color: true\ntable: true\ntable_width: 20\nsuites: [example, self]\n"), 0o600))

	cfg, path, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, p, path)
	require.NotNil(t, cfg.NoColor)
	assert.True(t, *cfg.NoColor)
	assert.True(t, cfg.Table)
	assert.Equal(t, 20, cfg.TableWidth)
	assert.Equal(t, []string{"example", "self"}, cfg.Suites)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := isolate(t)

	_, _, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("table: [not a bool\n"), 0o600))
	_, _, err = LoadConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}
