package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

func TestListCandidates_DirectChildrenOnly(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a_20150414_b4.tif"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "b_20180101_b5.tif"))

	candidates, err := ListCandidates(dir, Options{Recursive: false})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a_20150414_b4.tif", "notes.txt"}, baseNames(candidates))
}

func TestListCandidates_Recursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a_20150414_b4.tif"))
	touch(t, filepath.Join(dir, "sub", "b_20180101_b5.tif"))
	touch(t, filepath.Join(dir, "sub", "deeper", "c_20200620_b1.tif"))

	candidates, err := ListCandidates(dir, Options{Recursive: true})
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"a_20150414_b4.tif", "b_20180101_b5.tif", "c_20200620_b1.tif"},
		baseNames(candidates))
}

func TestListCandidates_SkipsHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, ".DS_Store"))
	touch(t, filepath.Join(dir, ".hidden_20150414.tif"))
	touch(t, filepath.Join(dir, "visible_20150414.tif"))

	for _, recursive := range []bool{false, true} {
		candidates, err := ListCandidates(dir, Options{Recursive: recursive})
		require.NoError(t, err)
		assert.Equal(t, []string{"visible_20150414.tif"}, baseNames(candidates),
			"recursive=%v", recursive)
	}
}

func TestListCandidates_TraversesHiddenDirs(t *testing.T) {
	// Only the file's own name decides visibility; a non-hidden file inside
	// a hidden directory is still a candidate.
	dir := t.TempDir()
	touch(t, filepath.Join(dir, ".cache", "d_20190101_b2.tif"))

	candidates, err := ListCandidates(dir, Options{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"d_20190101_b2.tif"}, baseNames(candidates))
}

func TestListCandidates_ExcludeNames(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "landsort"))
	touch(t, filepath.Join(dir, "scene_20150414_b4.tif"))

	candidates, err := ListCandidates(dir, Options{ExcludeNames: []string{"landsort"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"scene_20150414_b4.tif"}, baseNames(candidates))
}

func TestListCandidates_SourceMissing(t *testing.T) {
	_, err := ListCandidates(filepath.Join(t.TempDir(), "nope"), Options{})
	require.Error(t, err)

	_, err = ListCandidates(filepath.Join(t.TempDir(), "nope"), Options{Recursive: true})
	require.Error(t, err)
}

func TestSelfExclusions(t *testing.T) {
	names := SelfExclusions()
	require.NotEmpty(t, names)
	assert.Contains(t, names, filepath.Base(os.Args[0]))
}
