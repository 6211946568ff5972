// Package watch re-runs a handler when watched source files change on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/phyten/fortcase/internal/logging"
)

// DefaultSettle is how long a file must stay quiet before it is handled.
// Editors often write a file in several steps.
const DefaultSettle = 150 * time.Millisecond

// Handler is called with the path exactly as it was passed to New.
type Handler func(ctx context.Context, path string)

type Watcher struct {
	files  map[string]string // absolute path -> path as given
	dirs   []string
	handle Handler
	settle time.Duration
	logger *slog.Logger
	ready  chan struct{}
}

// New prepares a watcher for paths. Their parent directories are watched, so
// files replaced by rename (as editors and fileio.WriteAtomic do) keep being
// tracked.
func New(paths []string, handle Handler, logger *slog.Logger) (*Watcher, error) {
	w := &Watcher{
		files:  make(map[string]string, len(paths)),
		handle: handle,
		settle: DefaultSettle,
		logger: logging.Default(logger),
		ready:  make(chan struct{}),
	}
	seenDir := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch %q: %w", p, err)
		}
		w.files[abs] = p
		if dir := filepath.Dir(abs); !seenDir[dir] {
			seenDir[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	sort.Strings(w.dirs)
	return w, nil
}

// SetSettle overrides DefaultSettle.
func (w *Watcher) SetSettle(d time.Duration) { w.settle = d }

// Ready is closed once every directory is being watched.
func (w *Watcher) Ready() <-chan struct{} { return w.ready }

// Run blocks until ctx is done. Handler calls happen on this goroutine, one
// file at a time, in path order.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %q: %w", dir, err)
		}
	}
	w.logger.Info("watching", "files", len(w.files), "dirs", len(w.dirs))
	close(w.ready)

	pending := make(map[string]bool)
	timer := time.NewTimer(w.settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			path, ok := w.match(event)
			if !ok {
				continue
			}
			w.logger.Debug("change detected", "file", path, "op", event.Op.String())
			pending[path] = true
			timer.Reset(w.settle)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("fsnotify error", "error", err)

		case <-timer.C:
			batch := make([]string, 0, len(pending))
			for p := range pending {
				batch = append(batch, p)
			}
			clear(pending)
			sort.Strings(batch)
			for _, p := range batch {
				if ctx.Err() != nil {
					return nil
				}
				w.handle(ctx, p)
			}
		}
	}
}

// match reports whether event is a content change of a tracked file and
// returns the path as given to New.
func (w *Watcher) match(event fsnotify.Event) (string, bool) {
	if !Relevant(event) {
		return "", false
	}
	p, ok := w.files[filepath.Clean(event.Name)]
	return p, ok
}

// Relevant keeps writes and creations. A rename onto a watched name shows up
// as Create; removals are ignored until the file reappears.
func Relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
