// Package app loads models from OBJ or OpenSCAD sources and keeps them in
// sync with the files on disk.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/philipparndt/goobj/pkg/openscad"
)

// ErrUnsupported is returned for files that are neither .obj nor .scad
var ErrUnsupported = errors.New("unsupported file type")

// LoadModel loads an OBJ file, or renders an OpenSCAD file to a temporary
// OBJ first and loads that
func LoadModel(ctx context.Context, path string, opts obj.Options) (*mesh.Mesh, error) {
	m := mesh.NewWithOptions(opts)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		if err := m.Load(path); err != nil {
			return nil, err
		}
		return m, nil

	case ".scad":
		tmp, err := os.CreateTemp("", "goobj-*.obj")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp file: %w", err)
		}
		tmpPath := tmp.Name()
		tmp.Close()
		defer os.Remove(tmpPath)

		source, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}

		slog.Info("rendering openscad file", "path", source)
		renderer := openscad.NewRenderer(filepath.Dir(source))
		if err := renderer.RenderToOBJ(ctx, source, tmpPath); err != nil {
			return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
		}

		if err := m.Load(tmpPath); err != nil {
			return nil, fmt.Errorf("failed to load rendered model: %w", err)
		}
		return m, nil

	default:
		return nil, fmt.Errorf("%w: %q (expected .obj or .scad)", ErrUnsupported, ext)
	}
}

// WatchFiles returns the files whose changes affect the model at path: the
// file itself plus, for OpenSCAD sources, every used or included file
func WatchFiles(path string) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if !openscad.IsSource(abs) {
		return []string{abs}, nil
	}

	deps, err := openscad.NewRenderer(filepath.Dir(abs)).ResolveDependencies(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	return deps, nil
}
