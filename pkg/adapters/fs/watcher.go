package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/naming"
)

// DefaultWatchPattern matches every note file.
const DefaultWatchPattern = "*" + naming.Ext

// Watch reports changes to the files of dir whose base name matches pattern
// (doublestar syntax, DefaultWatchPattern when empty). Chmod-only events and
// temporary files are dropped. The channel is closed once ctx is done.
func (r *Repository) Watch(ctx context.Context, dir, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = DefaultWatchPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: watch pattern %q", core.ErrInvalidInput, pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("notes directory %s: %w", dir, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event, r.config.EventBuffer)
	r.setWatching(1)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer r.setWatching(-1)
		defer close(events)
		defer watcher.Close()

		return r.watchLoop(ctx, watcher, pattern, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.logger.Error("watcher stopped", "dir", dir, "error", err)
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, out chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}

			e, keep := mapEvent(ev, pattern)
			if !keep {
				continue
			}
			r.logger.Debug("note event", "type", e.Type, "path", e.Path)

			select {
			case out <- e:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.logger.Warn("fsnotify error", "error", err)
		}
	}
}

func mapEvent(ev fsnotify.Event, pattern string) (core.Event, bool) {
	if match, err := doublestar.Match(pattern, filepath.Base(ev.Name)); err != nil || !match {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case ev.Has(fsnotify.Create):
		t = core.EventCreate
	case ev.Has(fsnotify.Write):
		t = core.EventModify
	case ev.Has(fsnotify.Remove):
		t = core.EventDelete
	case ev.Has(fsnotify.Rename):
		t = core.EventRename
	default:
		return core.Event{}, false
	}

	return core.Event{Type: t, Path: ev.Name, Timestamp: time.Now().Unix()}, true
}

func (r *Repository) setWatching(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watchers += delta
}
