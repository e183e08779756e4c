package transfer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, content, 0640))
}

func TestNativeCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "LC08_L2SP_141055_20150414_20200908_02_T1_SR_B4.TIF")
	dst := filepath.Join(dir, "out", "2015", filepath.Base(src))

	content := []byte("tiff bytes")
	writeTestFile(t, src, content)

	tr := NewNativeTransferer(0)
	result, err := tr.Copy(src, dst, DefaultOptions())
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, int64(len(content)), result.BytesCopied)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// Source untouched
	assert.FileExists(t, src)
}

func TestNativeCopy_PreservesAttrs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scene_20150414_b4.tif")
	dst := filepath.Join(dir, "2015", "scene_20150414_b4.tif")

	writeTestFile(t, src, []byte("data"))
	mtime := time.Date(2015, 4, 14, 10, 30, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	tr := NewNativeTransferer(0)
	_, err := tr.Copy(src, dst, Options{PreserveAttrs: true})
	require.NoError(t, err)

	srcInfo, err := os.Stat(src)
	require.NoError(t, err)
	dstInfo, err := os.Stat(dst)
	require.NoError(t, err)

	assert.Equal(t, srcInfo.Mode().Perm(), dstInfo.Mode().Perm())
	assert.True(t, srcInfo.ModTime().Equal(dstInfo.ModTime()),
		"modification time should be preserved")
}

func TestNativeCopy_SourceMissing(t *testing.T) {
	dir := t.TempDir()

	tr := NewNativeTransferer(0)
	result, err := tr.Copy(filepath.Join(dir, "missing.tif"), filepath.Join(dir, "dst.tif"), DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.False(t, result.Success)
}

func TestNativeMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scene_20180101_b5.tif")
	dst := filepath.Join(dir, "2018", "scene_20180101_b5.tif")

	content := []byte("band five")
	writeTestFile(t, src, content)

	tr := NewNativeTransferer(0)
	result, err := tr.Move(src, dst, DefaultOptions())
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.True(t, result.SourceRemoved)

	assert.NoFileExists(t, src)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestNativeMove_CreatesIntermediateDirs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scene_20200620_b1.tif")
	dst := filepath.Join(dir, "deep", "nested", "2020", "scene_20200620_b1.tif")

	writeTestFile(t, src, []byte("x"))

	tr := NewNativeTransferer(0)
	result, err := tr.Move(src, dst, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.FileExists(t, dst)
}
