// Package watcher monitors a source directory and hands newly arrived
// files to a handler once they have settled (no writes for a configured
// window). Used by "landsort watch".
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Nomadcxx/landsort/internal/logging"
)

// Handler receives settled files discovered by the watcher.
type Handler interface {
	HandleFile(path string) error
}

// Watcher watches directories for new files.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	handler   Handler
	logger    *logging.Logger
	recursive bool
	settle    time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithRecursive controls whether subdirectories are watched too.
func WithRecursive(recursive bool) Option {
	return func(w *Watcher) {
		w.recursive = recursive
	}
}

// WithSettleDelay sets how long a file must stay unchanged before it is
// handed to the handler.
func WithSettleDelay(d time.Duration) Option {
	return func(w *Watcher) {
		w.settle = d
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *logging.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New creates a watcher that feeds settled files to handler.
func New(handler Handler, opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		handler:   handler,
		logger:    logging.Nop(),
		settle:    5 * time.Second,
		pending:   make(map[string]*time.Timer),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Watch registers the source directory (and its subdirectories when
// recursive) with the filesystem watcher.
func (w *Watcher) Watch(source string) error {
	if !w.recursive {
		if err := w.fsWatcher.Add(source); err != nil {
			return fmt.Errorf("unable to watch %s: %w", source, err)
		}
		w.logger.Info("watcher", "watching", logging.F("path", source))
		return nil
	}

	return filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == source {
				return fmt.Errorf("unable to watch %s: %w", source, err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("unable to watch %s: %w", path, err)
		}
		w.logger.Info("watcher", "watching", logging.F("path", path))
		return nil
	})
}

// Start processes filesystem events until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Warn("watcher", "filesystem event error", logging.F("error", err))
		}
	}
}

// Close stops the watcher and drops any pending settle timers.
func (w *Watcher) Close() error {
	w.mu.Lock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()
	return w.fsWatcher.Close()
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}

	if info.IsDir() {
		if w.recursive && !strings.HasPrefix(filepath.Base(event.Name), ".") {
			if err := w.fsWatcher.Add(event.Name); err == nil {
				w.logger.Info("watcher", "watching new directory", logging.F("path", event.Name))
			}
		}
		return
	}

	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return
	}

	w.scheduleSettle(event.Name)
}

// scheduleSettle (re)starts the settle timer for a file. Every write
// pushes the deadline back, so only files that have stopped changing
// reach the handler.
func (w *Watcher) scheduleSettle(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.settle)
		return
	}

	w.pending[path] = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		if err := w.handler.HandleFile(path); err != nil {
			w.logger.Error("watcher", "handler failed", err, logging.F("path", path))
		}
	})
}
