package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOTTO_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "exports", cfg.Paths.ExportsDir)

	profile := cfg.Profile.ToProfile()
	assert.Equal(t, 60, profile.TotalNumbers)
	assert.Equal(t, 6, profile.DrawSize)
	require.NoError(t, profile.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LOTTO_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("LOTTO_SERVER_PORT", "9999")
	t.Setenv("LOTTO_PROFILE_TOTAL_NUMBERS", "80")
	t.Setenv("LOTTO_PROFILE_DRAW_SIZE", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 80, cfg.Profile.TotalNumbers)
	assert.Equal(t, 5, cfg.Profile.DrawSize)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 3000
profile:
  name: quina
  total_numbers: 80
  draw_size: 5
  bet_size: 5
  hot_count: 8
  cold_count: 8
`
	require.NoError(t, os.WriteFile(configFile, []byte(yaml), 0644))
	t.Setenv("LOTTO_CONFIG_FILE", configFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "quina", cfg.Profile.Name)
	assert.Equal(t, 80, cfg.Profile.TotalNumbers)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 3000
profile:
  total_numbers: 80
`
	require.NoError(t, os.WriteFile(configFile, []byte(yaml), 0644))
	t.Setenv("LOTTO_CONFIG_FILE", configFile)
	t.Setenv("LOTTO_SERVER_PORT", "9999")

	cfg, err := Load()
	require.NoError(t, err)

	// Env beats file, file beats default, untouched fields keep defaults.
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 80, cfg.Profile.TotalNumbers)
	assert.Equal(t, 6, cfg.Profile.DrawSize)
}

func TestLoadRejectsInvalidProfile(t *testing.T) {
	t.Setenv("LOTTO_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("LOTTO_PROFILE_DRAW_SIZE", "100") // exceeds total numbers

	_, err := Load()
	assert.Error(t, err)
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Paths: PathsConfig{
			DataDir:    filepath.Join(dir, "data"),
			ExportsDir: filepath.Join(dir, "exports"),
			LogsDir:    filepath.Join(dir, "logs"),
		},
	}
	require.NoError(t, cfg.EnsureDirectories())

	for _, sub := range []string{"data", "exports", "logs"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
