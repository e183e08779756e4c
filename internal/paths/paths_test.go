package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandsortDir(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	dir, err := LandsortDir()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, filepath.Join(".config", "landsort")))
}

func TestConfigPath(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.toml", filepath.Base(path))
}

func TestHistoryPath(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	path, err := HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, "history.db", filepath.Base(path))
}

func TestDefaultLogPath(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	path, err := DefaultLogPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join("logs", "landsort.log")))
}
