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

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func startWatcher(t *testing.T, debounce time.Duration, files ...string) *recorder {
	t.Helper()

	fw, err := NewFileWatcher(debounce)
	require.NoError(t, err)
	require.NoError(t, fw.Add(files...))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	rec := &recorder{}
	go func() {
		defer close(done)
		fw.Run(ctx, rec.record)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
		_ = fw.Close()
	})
	return rec
}

func resolved(t *testing.T, path string) string {
	t.Helper()
	// t.TempDir may sit behind a symlink on some platforms
	dir, err := filepath.EvalSymlinks(filepath.Dir(path))
	require.NoError(t, err)
	return filepath.Join(dir, filepath.Base(path))
}

func TestWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := resolved(t, filepath.Join(dir, "model.obj"))
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\n"), 0o644))

	rec := startWatcher(t, 100*time.Millisecond, path)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("v 1 1 1\n"), 0o644))
	}

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) > 0
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, []string{path}, rec.snapshot())
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := resolved(t, filepath.Join(dir, "model.obj"))
	sibling := filepath.Join(filepath.Dir(path), "other.obj")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	rec := startWatcher(t, 10*time.Millisecond, path)

	require.NoError(t, os.WriteFile(sibling, []byte("v 0 0 0\n"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestWatcherSeesReplacedFile(t *testing.T) {
	dir := t.TempDir()
	path := resolved(t, filepath.Join(dir, "model.obj"))
	tmp := filepath.Join(filepath.Dir(path), "model.obj.tmp")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	rec := startWatcher(t, 10*time.Millisecond, path)

	require.NoError(t, os.WriteFile(tmp, []byte("v 0 0 0\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherAddAndReset(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.obj")
	b := filepath.Join(dir, "b.obj")

	fw, err := NewFileWatcher(time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, fw.Add(a, b))
	assert.Equal(t, 2, fw.Files())

	require.NoError(t, fw.Reset())
	assert.Zero(t, fw.Files())

	assert.Error(t, fw.Add(filepath.Join(dir, "missing", "c.obj")))
}
