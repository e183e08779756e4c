package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	mu    sync.Mutex
	paths []string
}

func (h *recordingHandler) HandleFile(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paths = append(h.paths, path)
	return nil
}

func (h *recordingHandler) handled() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.paths...)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return cond()
}

func TestWatcher_HandlesSettledFile(t *testing.T) {
	dir := t.TempDir()
	handler := &recordingHandler{}

	w, err := New(handler, WithSettleDelay(50*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	path := filepath.Join(dir, "LC08_L2SP_141055_20150414_20200908_02_T1_SR_B4.TIF")
	require.NoError(t, os.WriteFile(path, []byte("band 4"), 0644))

	ok := waitFor(t, 3*time.Second, func() bool {
		return len(handler.handled()) == 1
	})
	require.True(t, ok, "file should be handled after settling")
	assert.Equal(t, path, handler.handled()[0])
}

func TestWatcher_IgnoresHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	handler := &recordingHandler{}

	w, err := New(handler, WithSettleDelay(50*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".partial"), []byte("x"), 0644))

	time.Sleep(300 * time.Millisecond)
	assert.Empty(t, handler.handled())
}

func TestWatcher_WriteResetsSettleTimer(t *testing.T) {
	dir := t.TempDir()
	handler := &recordingHandler{}

	w, err := New(handler, WithSettleDelay(200*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	path := filepath.Join(dir, "scene_20150414_b4.tif")
	f, err := os.Create(path)
	require.NoError(t, err)

	// Keep writing past the settle window; the file must not be handled
	// while writes continue.
	for i := 0; i < 3; i++ {
		_, err = f.Write([]byte("chunk"))
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)
		assert.Empty(t, handler.handled(), "file handled before writes finished")
	}
	require.NoError(t, f.Close())

	ok := waitFor(t, 3*time.Second, func() bool {
		return len(handler.handled()) == 1
	})
	assert.True(t, ok, "file should be handled once writes stop")
}

func TestWatcher_MissingSource(t *testing.T) {
	handler := &recordingHandler{}

	w, err := New(handler)
	require.NoError(t, err)
	defer w.Close()

	err = w.Watch(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
