package loader

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"compliancemap/pkg/logger"
)

// debounceWindow coalesces the burst of writes editors and atomic renames
// produce into a single reload.
const debounceWindow = 250 * time.Millisecond

// Watcher reloads a Store when its backing file changes. It watches the
// containing directory rather than the file itself, so atomic
// write-then-rename updates are observed too.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher starts watching the store's backing file. Stop it by
// cancelling ctx; Close releases the fsnotify handle.
func NewWatcher(ctx context.Context, store *Store) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(store.path)); err != nil {
		_ = fsw.Close()

		return nil, err
	}

	w := &Watcher{store: store, watcher: fsw}
	go w.run(ctx)

	return w, nil
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	target := filepath.Clean(w.store.path)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.schedule(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn(ctx, "mapping watcher error", zap.Error(err))
		}
	}
}

// schedule arms (or re-arms) the debounce timer.
func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceWindow, func() {
		if ctx.Err() != nil {
			return
		}
		if err := w.store.Reload(ctx); err != nil {
			logger.Warn(ctx, "mapping reload failed, keeping previous snapshot", zap.Error(err))

			return
		}
		version, _ := w.store.MappingVersion(ctx)
		logger.Info(ctx, "mapping reloaded", zap.String("version", version))
	})
}
