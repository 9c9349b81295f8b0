package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/edgewatch/edgewatch/internal/sensor"
)

// Watch monitors path and calls onChange with the newly loaded Config each
// time the file changes. It blocks until ctx is cancelled.
//
// A change that fails to load (unreadable file, invalid YAML, failed
// validation) is logged and skipped; onChange only ever sees valid configs,
// so the previous config stays active.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	slog.Info("config: watching for changes", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if relevant(ev) {
				reload(path, onChange)
				// Atomic saves replace the inode; re-add so the next
				// change is still seen.
				_ = w.Add(path)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}

// WatchBounds monitors path and applies the reloaded sensor bounds through
// apply. This is the reload policy for a running monitor: bounds take effect
// on subsequent ticks, while the run shape (readings, tick interval, output
// paths) stays fixed for the lifetime of the run.
func WatchBounds(ctx context.Context, path string, apply func(map[string]sensor.Bounds)) error {
	return Watch(ctx, path, func(cfg *Config) {
		apply(cfg.Monitor.BoundsByName())
		slog.Info("config: sensor bounds applied", "sensors", len(cfg.Monitor.Sensors))
	})
}

// relevant reports whether ev should trigger a reload. Plain writes and the
// create half of an editor's rename→create atomic save both count.
func relevant(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// reload parses path and hands the result to onChange, or logs and skips.
func reload(path string, onChange func(*Config)) {
	cfg, err := Load(path)
	if err != nil {
		slog.Error("config: reload failed — keeping previous config",
			"path", path, "err", err)
		return
	}
	slog.Info("config: reloaded", "path", path)
	onChange(cfg)
}
