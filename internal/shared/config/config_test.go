package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitproxy_switch/internal/shared/types"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, FileName))
	require.NoError(t, err)

	want := types.DefaultConfig()
	assert.Equal(t, want.GitConf, cfg.GitConf)
	assert.Equal(t, want.ProbeConf, cfg.ProbeConf)
	assert.Equal(t, 3*time.Second, cfg.ProbeConf.Timeout)
	assert.Equal(t, filepath.Join(dir, "history.json"), cfg.HistoryConf.File)
	assert.Equal(t, 10, cfg.HistoryConf.MaxEntries)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `
[git]
remote = https://gitlab.com

[probe]
timeout = 10s

[history]
file = /var/lib/gitproxy/recent.json
max_entries = 5

[log]
level = debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "git", cfg.GitConf.Binary)
	assert.Equal(t, "https://gitlab.com", cfg.GitConf.Remote)
	assert.Equal(t, 10*time.Second, cfg.ProbeConf.Timeout)
	assert.Equal(t, "HEAD", cfg.ProbeConf.Ref)
	assert.Equal(t, "/var/lib/gitproxy/recent.json", cfg.HistoryConf.File)
	assert.Equal(t, 5, cfg.HistoryConf.MaxEntries)
	assert.Equal(t, "debug", cfg.LogConf.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[history]\nmax_entries = 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_entries")
}

func TestValidate(t *testing.T) {
	cfg := types.DefaultConfig()
	require.NoError(t, Validate(cfg))

	cfg.ProbeConf.Timeout = 0
	cfg.GitConf.Binary = ""
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe.timeout")
	assert.Contains(t, err.Error(), "git.binary")
}
