package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"colloquy-hq/colloquy/pkg/config"
)

// Handler is invoked with the path of a conversation log that has settled
// after being created or written.
type Handler func(path string)

// Watcher observes a directory for new or modified conversation logs and
// invokes a handler once writes have settled. Rapid successive writes to the
// same file collapse into a single handler call per debounce interval.
type Watcher struct {
	cfg     config.WatchConfig
	handler Handler
	logger  *slog.Logger

	fs *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]*time.Timer
	done    chan struct{}
}

// New creates a watcher over the configured directory.
func New(cfg config.WatchConfig, handler Handler, logger *slog.Logger) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("watch path is empty")
	}
	if handler == nil {
		return nil, fmt.Errorf("watch handler is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(cfg.Path); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", cfg.Path, err)
	}

	return &Watcher{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		fs:      fs,
		pending: make(map[string]*time.Timer),
		done:    make(chan struct{}),
	}, nil
}

// Start processes filesystem events until the context is canceled or Stop is
// called. It blocks; run it in its own goroutine when the caller has other
// work to do.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info("watching for conversation logs",
		slog.String("path", w.cfg.Path),
		slog.Any("extensions", w.cfg.Extensions))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !w.accepts(event.Name) {
				continue
			}
			w.debounce(event.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", slog.Any("error", err))
		}
	}
}

// Stop terminates the watcher and cancels pending debounce timers.
func (w *Watcher) Stop() error {
	close(w.done)

	w.mu.Lock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	return w.fs.Close()
}

// accepts reports whether the path matches a configured extension.
func (w *Watcher) accepts(path string) bool {
	if len(w.cfg.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range w.cfg.Extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// debounce schedules the handler for the path, resetting any pending timer
// so a burst of writes results in one call.
func (w *Watcher) debounce(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.cfg.DebounceInterval)
		return
	}

	w.pending[path] = time.AfterFunc(w.cfg.DebounceInterval, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		select {
		case <-w.done:
			return
		default:
		}
		w.handler(path)
	})
}
