package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.UI.ColoredOutput)
	assert.True(t, cfg.UI.ShowCompletedMark)
	assert.Equal(t, 0, cfg.Search.MaxResults)
	assert.NotEmpty(t, cfg.Session.HistoryFile)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.UI.ColoredOutput)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
ui:
  colored_output: false
search:
  max_results: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.UI.ColoredOutput)
	assert.Equal(t, 5, cfg.Search.MaxResults)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.UI.ShowCompletedMark)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("REMINDME_UI_COLORED_OUTPUT", "false")
	t.Setenv("REMINDME_SEARCH_MAX_RESULTS", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.UI.ColoredOutput)
	assert.Equal(t, 3, cfg.Search.MaxResults)
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	cfg.Search.MaxResults = -1
	assert.Error(t, cfg.Validate())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".remindme/history"), expandPath("~/.remindme/history"))
	assert.Equal(t, "/tmp/history", expandPath("/tmp/history"))
	assert.Equal(t, "", expandPath(""))
}
