package preferences

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatchDebounce sets the quiet period before a change is applied.
func WithWatchDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithWatchLogger sets the watcher logger.
func WithWatchLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) { w.logger = l }
}

// Watcher reloads a Store when its file changes on disk. The directory is
// watched so editor rename-over saves are seen.
type Watcher struct {
	store    *Store
	debounce time.Duration
	logger   *slog.Logger
	onChange func(Preferences)

	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	mu      sync.Mutex
	pending time.Time
}

// NewWatcher creates a watcher for store. onChange may be nil.
func NewWatcher(store *Store, onChange func(Preferences), opts ...WatcherOption) *Watcher {
	w := &Watcher{
		store:    store,
		debounce: 250 * time.Millisecond,
		logger:   slog.Default(),
		onChange: onChange,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching.
func (w *Watcher) Start() error {
	if w.store.Path() == "" {
		return errors.New("preferences: watcher needs a file-backed store")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("preferences: create fsnotify: %w", err)
	}
	dir := filepath.Dir(w.store.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("preferences: create dir %s: %w", dir, err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("preferences: watch %s: %w", dir, err)
	}
	w.fsWatcher = fsw
	w.wg.Add(1)
	go w.loop()
	return nil
}

// Stop terminates the watcher and waits for its goroutine. Safe to call twice.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() { close(w.done) })
	w.wg.Wait()
	if w.fsWatcher != nil {
		return w.fsWatcher.Close()
	}
	return nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	target := filepath.Clean(w.store.Path())
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("preferences watcher error", "err", err)
		case <-ticker.C:
			w.processPending()
		}
	}
}

func (w *Watcher) processPending() {
	w.mu.Lock()
	ready := !w.pending.IsZero() && time.Since(w.pending) >= w.debounce
	if ready {
		w.pending = time.Time{}
	}
	w.mu.Unlock()
	if !ready {
		return
	}

	data, err := os.ReadFile(w.store.Path())
	if err != nil {
		w.logger.Error("preferences watcher: read failed", "path", w.store.Path(), "err", err)
		return
	}
	if digest(data) == w.store.Hash() {
		w.logger.Debug("preferences watcher: content unchanged", "path", w.store.Path())
		return
	}
	if err := w.store.Load(); err != nil {
		w.logger.Error("preferences watcher: reload failed", "path", w.store.Path(), "err", err)
		return
	}
	w.logger.Info("preferences reloaded", "path", w.store.Path())
	if w.onChange != nil {
		w.onChange(w.store.Get())
	}
}
