package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads settings.yaml whenever it changes and hands the result to
// onChange, until ctx is cancelled. Only the advanced overrides live-reload;
// the binding and mode files are immutable for the run and are not watched.
// The watcher runs on its own goroutine; onChange is called from it.
func (s *Store) Watch(ctx context.Context, onChange func(Settings)) error {
	if onChange == nil {
		return fmt.Errorf("onChange callback is required")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}

	// Watch the directory, not the file: editors replace files by rename,
	// which drops a direct file watch.
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch settings dir: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != settingsFileName {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
					continue
				}
				settings := s.LoadSettings()
				slog.Info("[config] settings reloaded", "path", ev.Name)
				onChange(settings)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("[config] settings watcher error", "error", err)
			}
		}
	}()

	return nil
}
