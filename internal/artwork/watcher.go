package artwork

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher raises a signal whenever an image file in the cache directory
// changes, so the display reacts faster than the poll interval alone
// allows. The poll remains the source of truth; the watcher is an
// accelerator and every failure mode degrades back to polling.
type Watcher struct {
	logger   *zap.Logger
	dir      string
	watcher  *fsnotify.Watcher
	changed  chan struct{}
	mu       sync.Mutex
	running  bool
	watching bool
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for the given cache directory.
func NewWatcher(logger *zap.Logger, dir string) *Watcher {
	return &Watcher{
		logger:  logger,
		dir:     dir,
		changed: make(chan struct{}, 1),
	}
}

// Start begins watching. A missing directory is tolerated: the watch is
// established lazily via Rearm once the directory may have appeared.
func (w *Watcher) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		// Without inotify the poll interval still covers changes.
		w.mu.Unlock()
		w.logger.Warn("artwork watcher unavailable, relying on polling",
			zap.Error(err))
		return nil
	}

	w.running = true
	w.watcher = fsw
	w.addLocked()

	runCtx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run(runCtx)

	return nil
}

// Stop gracefully stops the watcher.
func (w *Watcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.watching = false

	if w.cancel != nil {
		w.cancel()
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Debug("close artwork watcher", zap.Error(err))
	}
	w.mu.Unlock()

	w.wg.Wait()

	w.logger.Info("artwork watcher stopped")
	return nil
}

// Changed returns a read-only channel carrying change signals. Bursts
// of filesystem events collapse into a single pending signal.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Rearm retries establishing the directory watch if it is not active
// yet. Callers invoke it from the poll tick so a cache directory
// created after startup still gets watched.
func (w *Watcher) Rearm() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running || w.watching {
		return
	}
	w.addLocked()
}

func (w *Watcher) addLocked() {
	if err := w.watcher.Add(w.dir); err != nil {
		w.logger.Debug("artwork cache not watchable yet",
			zap.String("dir", w.dir),
			zap.Error(err))
		return
	}
	w.watching = true
	w.logger.Info("watching artwork cache", zap.String("dir", w.dir))
	// The directory may already hold art from before the watch existed.
	w.notify()
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isImageFile(filepath.Base(event.Name)) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.logger.Debug("artwork cache changed",
					zap.String("file", event.Name),
					zap.String("op", event.Op.String()))
				w.notify()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("artwork watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.changed <- struct{}{}:
	default:
		// A signal is already pending.
	}
}
