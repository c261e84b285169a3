package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unidiff.yml")
	require.NoError(t, os.WriteFile(path, []byte("strip: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Strip)

	// Unspecified fields keep their defaults:
	require.Equal(t, DefaultConfig().StatNameWidth, cfg.StatNameWidth)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unidiff.yml")
	require.NoError(t, os.WriteFile(path, []byte("strip: [not an int\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestDiscoverOrder(t *testing.T) {
	dir := t.TempDir()
	require.Empty(t, Discover(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".unidiff.yml"), nil, 0o644))
	require.Equal(t, filepath.Join(dir, ".unidiff.yml"), Discover(dir))

	// A bare unidiff.yml takes precedence over the dotfile:
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unidiff.yml"), nil, 0o644))
	require.Equal(t, filepath.Join(dir, "unidiff.yml"), Discover(dir))
}
