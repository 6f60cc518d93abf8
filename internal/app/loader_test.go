package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/philipparndt/goobj/internal/meshtest"
	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/philipparndt/goobj/pkg/openscad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadModelOBJ(t *testing.T) {
	path := meshtest.WriteOBJ(t, meshtest.CubeOBJ)

	m, err := LoadModel(context.Background(), path, obj.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 8, m.VertexCount())
	assert.InDelta(t, 1.0, analysis.Volume(m), 1e-9)
}

func TestLoadModelUnsupported(t *testing.T) {
	_, err := LoadModel(context.Background(), "model.stl", obj.DefaultOptions())
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestLoadModelMissing(t *testing.T) {
	_, err := LoadModel(context.Background(), filepath.Join(t.TempDir(), "missing.obj"), obj.DefaultOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadModelSCADWithoutOpenSCAD(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	path := filepath.Join(t.TempDir(), "part.scad")
	require.NoError(t, os.WriteFile(path, []byte("cube(10);\n"), 0o644))

	_, err := LoadModel(context.Background(), path, obj.DefaultOptions())
	assert.ErrorIs(t, err, openscad.ErrNotInstalled)
}

func TestWatchFiles(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "main.scad")
	lib := filepath.Join(dir, "lib.scad")
	require.NoError(t, os.WriteFile(source, []byte("use <lib.scad>\n"), 0o644))
	require.NoError(t, os.WriteFile(lib, nil, 0o644))

	files, err := WatchFiles(source)
	require.NoError(t, err)
	assert.Equal(t, []string{source, lib}, files)

	model := filepath.Join(dir, "model.obj")
	files, err = WatchFiles(model)
	require.NoError(t, err)
	assert.Equal(t, []string{model}, files)
}

func TestWatchReloadsOnChange(t *testing.T) {
	path := meshtest.WriteOBJ(t, meshtest.CubeOBJ)

	var (
		mu      sync.Mutex
		volumes []float64
	)
	report := func(m *mesh.Mesh, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err == nil {
			volumes = append(volumes, analysis.Volume(m))
		}
	}
	reports := func() []float64 {
		mu.Lock()
		defer mu.Unlock()
		return append([]float64(nil), volumes...)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, obj.Options{Scale: 1}, 20*time.Millisecond, report)
	}()

	require.Eventually(t, func() bool { return len(reports()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.InDelta(t, 1e9, reports()[0], 1)

	require.NoError(t, os.WriteFile(path, []byte(meshtest.CubeOBJ), 0o644))
	require.Eventually(t, func() bool { return len(reports()) >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
