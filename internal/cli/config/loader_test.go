package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Cleanup(ResetConfig)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "frame.yaml", cfg.Spec)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFile(t *testing.T) {
	t.Cleanup(ResetConfig)
	dir := t.TempDir()
	t.Chdir(dir)

	content := []byte("output: json\nspec: columns.yaml\nvars:\n  n: 5\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leapframe.yaml"), content, 0o600))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "columns.yaml", cfg.Spec)
	assert.Equal(t, map[string]any{"n": 5}, cfg.Vars)
	assert.NotEmpty(t, GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Cleanup(ResetConfig)
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "leapframe.yaml"), []byte("output: json\n"), 0o600))
	t.Setenv("LEAPFRAME_OUTPUT", "csv")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.OutputFormat)
}

func TestLoadConfigFlagsWin(t *testing.T) {
	t.Cleanup(ResetConfig)
	t.Chdir(t.TempDir())
	t.Setenv("LEAPFRAME_OUTPUT", "csv")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	require.NoError(t, flags.Parse([]string{"--output", "md"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "md", cfg.OutputFormat)
}

func TestLoadConfigUnchangedFlagIgnored(t *testing.T) {
	t.Cleanup(ResetConfig)
	t.Chdir(t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "table", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.OutputFormat, "unset flag must not override defaults")
}

func TestLoadConfigInvalidOutput(t *testing.T) {
	t.Cleanup(ResetConfig)
	t.Chdir(t.TempDir())
	t.Setenv("LEAPFRAME_OUTPUT", "xml")

	_, err := LoadConfig("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestGetCurrentConfigFallback(t *testing.T) {
	ResetConfig()
	cfg := GetCurrentConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "table", cfg.OutputFormat)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	t.Cleanup(ResetConfig)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: md\n"), 0o600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "md", cfg.OutputFormat)
	assert.Equal(t, path, GetConfigFileUsed())
}
