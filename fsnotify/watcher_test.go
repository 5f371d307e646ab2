package fsnotify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hulla/docugen/fsnotify"
	"github.com/stretchr/testify/require"
)

// watch starts w in the background and returns a channel receiving one
// value per callback. The watcher stops when the test ends.
func watch(t *testing.T, w *fsnotify.Watcher, dir string) <-chan struct{} {
	t.Helper()

	calls := make(chan struct{}, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, []string{dir}, func(context.Context) { calls <- struct{}{} })
	}()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	// Give the watcher time to register directories.
	time.Sleep(50 * time.Millisecond)
	return calls
}

func TestWatcher_Watch(t *testing.T) {
	t.Parallel()

	t.Run("calls back once per burst", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		calls := watch(t, &fsnotify.Watcher{Debounce: 100 * time.Millisecond}, dir)

		for i := range 5 {
			path := filepath.Join(dir, "a.ts")
			require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o644))
		}

		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("callback not called")
		}

		select {
		case <-calls:
			t.Fatal("callback called twice for one burst")
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("ignores configured paths", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out := filepath.Join(dir, "docs")
		require.NoError(t, os.Mkdir(out, 0o755))

		w := &fsnotify.Watcher{Ignore: []string{out}, Debounce: 50 * time.Millisecond}
		calls := watch(t, w, dir)

		require.NoError(t, os.WriteFile(filepath.Join(out, "a.md"), []byte("# a"), 0o644))

		select {
		case <-calls:
			t.Fatal("callback called for ignored path")
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("watches directories created later", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		calls := watch(t, &fsnotify.Watcher{Debounce: 50 * time.Millisecond}, dir)

		sub := filepath.Join(dir, "src")
		require.NoError(t, os.Mkdir(sub, 0o755))
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("directory creation not seen")
		}

		require.NoError(t, os.WriteFile(filepath.Join(sub, "b.ts"), []byte("x"), 0o644))

		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("change in new directory not seen")
		}
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		t.Parallel()

		w := &fsnotify.Watcher{}
		err := w.Watch(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, func(context.Context) {})

		require.Error(t, err)
	})
}
