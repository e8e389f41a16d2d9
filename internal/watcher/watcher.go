// Package watcher provides file system watching with debouncing for
// Turtle source files.
package watcher

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a directory for changes to Turtle files and sends
// the changed paths after a debounce interval.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	dir        string
	extensions map[string]bool
	debounce   time.Duration
	onChange   chan []string
	done       chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Dir         string
	Extensions  []string
	DebounceDur time.Duration
}

// DefaultConfig returns sensible defaults for watching dir.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:         dir,
		Extensions:  []string{".ttl", ".n3", ".nt"},
		DebounceDur: 500 * time.Millisecond,
	}
}

// New creates a new watcher for the configured directory.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	exts := make(map[string]bool, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		exts[strings.ToLower(ext)] = true
	}

	return &Watcher{
		fsWatcher:  fsw,
		dir:        cfg.Dir,
		extensions: exts,
		debounce:   cfg.DebounceDur,
		onChange:   make(chan []string, 1),
		done:       make(chan struct{}),
	}, nil
}

// Start begins watching. Returns a channel that receives the batch of
// changed file paths after each debounce window.
func (w *Watcher) Start() (<-chan []string, error) {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return nil, fmt.Errorf("watching directory %s: %w", w.dir, err)
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = map[string]bool{}
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			pending[event.Name] = true
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			batch := make([]string, 0, len(pending))
			for path := range pending {
				batch = append(batch, path)
			}
			pending = map[string]bool{}
			timer = nil
			timerC = nil

			select {
			case w.onChange <- batch:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			_ = err // errors are transient; keep watching

		case <-w.done:
			return
		}
	}
}

// isRelevantEvent reports whether event is a write or create of a file
// with a watched extension.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	return w.extensions[ext]
}
