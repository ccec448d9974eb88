// Package watcher reloads a binding configuration file when it changes.
//
// The watcher monitors the directory containing the file, so editors that
// save by writing a temporary file and renaming it over the original are
// handled. Bursts of events are debounced into a single reload.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/remixlab/dandelion/internal/config"
)

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = 1 << iota

	// OpCreate indicates the file was created.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed.
	OpRename
)

var opNames = []struct {
	op   Operation
	name string
}{
	{OpWrite, "write"},
	{OpCreate, "create"},
	{OpRemove, "remove"},
	{OpRename, "rename"},
}

// String returns the operation names joined by '|', e.g. "create|write".
func (op Operation) String() string {
	var names []string
	for _, n := range opNames {
		if op&n.op != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "unknown"
	}
	return strings.Join(names, "|")
}

// convertOp converts fsnotify.Op to Operation. Chmod maps to zero.
func convertOp(fsOp fsnotify.Op) Operation {
	var op Operation
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}

// ReloadFunc receives the result of each reload. Exactly one of cfg and
// err is non-nil.
type ReloadFunc func(cfg *config.Config, err error)

// Watcher reloads one configuration file on change.
type Watcher struct {
	mu sync.Mutex

	// fsnotify watcher on the file's directory
	fsw *fsnotify.Watcher

	// Absolute path of the watched file
	path string

	onReload ReloadFunc
	loadOpts []config.Option
	logger   *slog.Logger

	// Debounce settings
	debounce time.Duration
	timer    *time.Timer
	pending  Operation

	// Lifecycle
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup

	reloads atomic.Uint64
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period after the last event before reloading.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithLoadOptions passes opts to config.Load on every reload.
func WithLoadOptions(opts ...config.Option) Option {
	return func(w *Watcher) {
		w.loadOpts = append(w.loadOpts, opts...)
	}
}

// New starts watching the configuration file at path. onReload is called
// from the watcher's goroutines and must not call Close.
func New(path string, onReload ReloadFunc, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     filepath.Clean(absPath),
		onReload: onReload,
		logger:   slog.New(slog.DiscardHandler),
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("config", w.path)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	w.fsw = fsw

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Reloads returns the number of reloads performed.
func (w *Watcher) Reloads() uint64 {
	return w.reloads.Load()
}

// Run blocks until ctx is cancelled or the watcher is closed. A cancelled
// context closes the watcher and returns ctx.Err().
func (w *Watcher) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		if err := w.Close(); err != nil {
			return err
		}
		return ctx.Err()
	case <-w.closeCh:
		return nil
	}
}

// Close stops the watcher. Pending reloads are dropped and a reload already
// running is waited for, so onReload is never called after Close returns.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.fsw.Close()
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if op := convertOp(ev.Op); op != 0 {
				w.schedule(op)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
			w.deliver(nil, err)
		}
	}
}

// schedule arms the debounce timer, extending it on every event.
func (w *Watcher) schedule(op Operation) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.pending |= op
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.reload)
		return
	}
	w.timer.Reset(w.debounce)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	op := w.pending
	w.pending = 0
	w.timer = nil
	w.closedWg.Add(1)
	w.mu.Unlock()
	defer w.closedWg.Done()

	cfg, err := config.Load(w.path, w.loadOpts...)
	w.reloads.Add(1)
	if err != nil {
		w.logger.Warn("config reload failed", "ops", op, "error", err)
	} else {
		w.logger.Info("config reloaded", "ops", op, "bindings", len(cfg.Bindings))
	}
	w.deliver(cfg, err)
}

func (w *Watcher) deliver(cfg *config.Config, err error) {
	if w.onReload != nil {
		w.onReload(cfg, err)
	}
}
