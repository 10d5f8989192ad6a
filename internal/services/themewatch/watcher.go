// Package themewatch watches the config file for changes so the shell
// can hot-reload its theme without restarting.
package themewatch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow suppresses the duplicate events editors emit for a
// single save.
const debounceWindow = 100 * time.Millisecond

// Watcher watches a single config file and reports changes on Events.
type Watcher struct {
	path   string
	fsw    *fsnotify.Watcher
	events chan string
	logger *slog.Logger

	closeOnce sync.Once
}

// New creates a watcher for the given file. The parent directory is
// watched so saves that replace the file (rename-over) are seen too.
func New(path string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		path:   path,
		fsw:    fsw,
		events: make(chan string, 1),
		logger: logger,
	}
	go w.loop()
	return w, nil
}

// Events reports the config file path each time it changes. The
// channel closes when the watcher is closed.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Close stops the watcher. Idempotent.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.events)

	var lastSent time.Time
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if time.Since(lastSent) < debounceWindow {
				continue
			}
			lastSent = time.Now()
			select {
			case w.events <- w.path:
			default:
				// A reload is already pending; drop the duplicate.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}
