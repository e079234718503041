package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bindump.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Config{Width: 16}, cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "unchecked = true\ntrace = true\nwidth = 8\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Unchecked: true, Trace: true, Width: 8}, cfg)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "trace = true\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Trace)
	assert.Equal(t, 16, cfg.Width)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "tarce = true\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigRejectsBadWidth(t *testing.T) {
	path := writeConfig(t, "width = -4\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
