package state

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher reports changes to a storage file made by other processes.
type Watcher struct {
	watcher    *fsnotify.Watcher
	file       string
	debounce   time.Duration
	onChange   func()
	logger     *logrus.Entry

	mu      sync.Mutex
	pending *time.Timer
	gen     uint64
	fireMu  sync.Mutex
}

// NewWatcher watches the directory of file (the file itself is replaced on
// every write, which a direct watch would lose) and calls onChange once a
// burst of changes has been quiet for debounce.
func NewWatcher(file string, debounce time.Duration, logger *logrus.Entry, onChange func()) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(filepath.Dir(file)); err != nil {
		w.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Watcher{
		watcher:  w,
		file:     filepath.Clean(file),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}, nil
}

// Start blocks until ctx is cancelled, dispatching change notifications.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.file {
				continue
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.handleChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.stopPending()
			w.watcher.Close()
			return
		}
	}
}

func (w *Watcher) handleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
		w.logger.Debug("Storage changed again, restarting debounce")
	}
	w.gen++
	gen := w.gen
	w.pending = time.AfterFunc(w.debounce, func() { w.fire(gen) })
}

// fire runs onChange unless a newer change superseded gen.
func (w *Watcher) fire(gen uint64) {
	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.pending = nil
	w.mu.Unlock()

	if w.onChange == nil {
		return
	}
	w.fireMu.Lock()
	defer w.fireMu.Unlock()
	w.onChange()
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.gen++
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.stopPending()
	return w.watcher.Close()
}
