package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/philipparndt/goobj/pkg/watcher"
)

// ReportFunc receives every (re)load result. Exactly one of m and err is
// non-nil.
type ReportFunc func(m *mesh.Mesh, err error)

// Watch loads the model at path, reports it, and reloads and reports again
// whenever the file or one of its dependencies changes. Load errors are
// reported and watching continues. Watch returns when ctx is done.
func Watch(ctx context.Context, path string, opts obj.Options, debounce time.Duration, report ReportFunc) error {
	fw, err := watcher.NewFileWatcher(debounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := watchDependencies(fw, path); err != nil {
		return err
	}

	// Pending reloads collapse into one.
	changes := make(chan string, 1)
	go fw.Run(ctx, func(changed string) {
		select {
		case changes <- changed:
		default:
		}
	})

	report(LoadModel(ctx, path, opts))

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-changes:
			slog.Info("reloading model", "path", path, "changed", changed)
			report(LoadModel(ctx, path, opts))

			// includes may have changed with the edit
			if err := fw.Reset(); err != nil {
				return fmt.Errorf("failed to reset watcher: %w", err)
			}
			if err := watchDependencies(fw, path); err != nil {
				slog.Warn("failed to refresh watched files", "error", err)
				if err := fw.Add(path); err != nil {
					return err
				}
			}
		}
	}
}

func watchDependencies(fw *watcher.FileWatcher, path string) error {
	files, err := WatchFiles(path)
	if err != nil {
		return err
	}
	if err := fw.Add(files...); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}
	slog.Info("watching for changes", "files", len(files))
	return nil
}
