// Package fsnotify re-runs documentation generation when sources change.
package fsnotify

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for events to settle.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches directory trees and calls back once per burst of changes.
type Watcher struct {
	// Ignore lists paths whose events are dropped, with their subtrees.
	// The output directory belongs here so that writing pages does not
	// trigger another run.
	Ignore []string

	Debounce time.Duration
}

// Watch adds every directory under dirs and calls fn after each burst of
// write, create, remove or rename events. Watch blocks until ctx is done;
// fn is never called concurrently with itself.
func (w *Watcher) Watch(ctx context.Context, dirs []string, fn func(ctx context.Context)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := w.addTree(watcher, dir); err != nil {
			return err
		}
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if event.Has(fsnotify.Create) {
				// New directories are watched too; errors mean it was a file.
				_ = w.addTree(watcher, event.Name)
			}
			timer.Reset(debounce)
		case <-timer.C:
			fn(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if w.ignored(event.Name) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// addTree watches root and every directory below it.
func (w *Watcher) addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignored(path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) ignored(path string) bool {
	path = filepath.Clean(path)
	for _, ignore := range w.Ignore {
		ignore = filepath.Clean(ignore)
		if path == ignore || strings.HasPrefix(path, ignore+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
