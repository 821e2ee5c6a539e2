package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julien-sobczak/the-noteformatter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(`
[core]
root = "/tmp/my-notes"

[format]
words = true
lists = false
`), 0644)
	require.NoError(t, err)
	chdir(t, dir)

	cfg, err := config.ReadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/my-notes", cfg.Core.Root)
	assert.True(t, cfg.Format.Words)
	assert.False(t, cfg.Format.Lists)
}

func TestReadConfigInvalidFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(`[core`), 0644)
	require.NoError(t, err)
	chdir(t, dir)

	_, err = config.ReadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse config file")
}

func TestReadConfigExpandsHome(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(`
[core]
root = "~/notes"
`), 0644)
	require.NoError(t, err)
	chdir(t, dir)

	cfg, err := config.ReadConfig()
	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes"), cfg.Core.Root)
}

func chdir(t *testing.T, dir string) {
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(previous)
	})
}
