package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 100 * time.Millisecond

// ReadFile reads a theme file and parses its contents with Parse.
func ReadFile(path string) (Mode, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Unset, fmt.Errorf("read theme file: %w", err)
	}
	return Parse(string(raw)), nil
}

// Watcher follows a theme file and reports mode changes. It watches the
// containing directory so editors that replace the file on save are seen.
type Watcher struct {
	mu       sync.Mutex
	path     string
	log      *zap.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
	last     Mode
	changes  chan Mode
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	stopOnce sync.Once
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the file must be quiet before it is re-read.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher creates a watcher for path. The current file contents, if
// readable, become the baseline so only later changes are reported.
func NewWatcher(path string, log *zap.Logger, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve theme file: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		path:     filepath.Clean(abs),
		log:      log,
		watcher:  fw,
		debounce: defaultDebounce,
		changes:  make(chan Mode, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if m, err := ReadFile(w.path); err == nil {
		w.last = m
	}
	return w, nil
}

// Current returns the last mode read from the file.
func (w *Watcher) Current() Mode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Changes delivers each new mode. It is closed when the watcher stops.
func (w *Watcher) Changes() <-chan Mode {
	return w.changes
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.Debug("watching theme file", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()

	w.stopOnce.Do(func() { close(w.stopCh) })
	if running {
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer close(w.changes)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("theme watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			if !w.reload(ctx) {
				return
			}
		}
	}
}

// reload re-reads the file and publishes a changed mode. It returns false
// when the watcher is shutting down.
func (w *Watcher) reload(ctx context.Context) bool {
	m, err := ReadFile(w.path)
	if err != nil {
		w.log.Debug("theme file unreadable", zap.Error(err))
		return true
	}

	w.mu.Lock()
	if m == w.last {
		w.mu.Unlock()
		return true
	}
	w.last = m
	w.mu.Unlock()

	w.log.Info("theme changed", zap.Stringer("theme", m))
	select {
	case w.changes <- m:
		return true
	case <-ctx.Done():
		return false
	case <-w.stopCh:
		return false
	}
}
