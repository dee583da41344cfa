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
	path := filepath.Join(t.TempDir(), "manhattan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level: DEBUG
breakpoint: 800
map_image: /srv/map.webp
landmarks: landmarks.yaml
window:
  width: 390
  height: 844
hot_reload: true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 800.0, cfg.Breakpoint)
	assert.Equal(t, "/srv/map.webp", cfg.MapImage)
	assert.Equal(t, "landmarks.yaml", cfg.Landmarks)
	assert.Equal(t, Window{Width: 390, Height: 844}, cfg.Window)
	assert.True(t, cfg.HotReload)
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	path := writeConfig(t, "breakpoint: -1\nwindow:\n  width: 0\n  height: 100\nlog_level: \"  \"\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 768.0, cfg.Breakpoint)
	assert.Equal(t, Default().Window, cfg.Window)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "breakpoint: [oops")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "log_level: info\nbreakpoint: 700\n")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvBreakpoint, "1024")
	t.Setenv(EnvHotReload, "true")
	t.Setenv(EnvLandmarks, "/etc/landmarks.json")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 1024.0, cfg.Breakpoint)
	assert.True(t, cfg.HotReload)
	assert.Equal(t, "/etc/landmarks.json", cfg.Landmarks)
}

func TestEnvOverrideErrors(t *testing.T) {
	path := writeConfig(t, "")

	t.Setenv(EnvBreakpoint, "wide")
	_, err := Load(path)
	assert.ErrorContains(t, err, EnvBreakpoint)

	t.Setenv(EnvBreakpoint, "")
	t.Setenv(EnvHotReload, "maybe")
	_, err = Load(path)
	assert.ErrorContains(t, err, EnvHotReload)
}

func TestLoadNormalizesOnEnvError(t *testing.T) {
	path := writeConfig(t, "breakpoint: 0\nlog_level: WARN\n")
	t.Setenv(EnvHotReload, "bogus")

	cfg, err := Load(path)

	require.ErrorContains(t, err, EnvHotReload)
	assert.Equal(t, 768.0, cfg.Breakpoint)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "map_image: custom.png\n")
	t.Setenv(EnvConfig, path)

	cfg, err := LoadFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "custom.png", cfg.MapImage)
}
