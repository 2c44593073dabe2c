// Package watcher reloads pet listings when their file changes on disk.
package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Event reports that the watched file changed.
type Event struct {
	Path string
}

// Watcher watches a single file. Editors often replace files instead of
// writing them in place, so the parent directory is watched and events are
// filtered by name.
type Watcher struct {
	path      string
	fs        *fsnotify.Watcher
	debouncer *Debouncer
	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New starts watching path.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:      abs,
		fs:        fsw,
		debouncer: NewDebouncer(0),
		events:    make(chan Event, 1),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce window.
func WithDebounce(d *Debouncer) Option {
	return func(w *Watcher) {
		w.debouncer = d
	}
}

// Events delivers one Event per debounced burst of changes. If the consumer
// is slow, bursts coalesce into a single pending event.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.debouncer.Trigger(w.emit)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: watcher error on %s: %v", w.path, err)
		}
	}
}

func (w *Watcher) emit() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.events <- Event{Path: w.path}:
	default:
		// an event is already pending
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.debouncer.Cancel()
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}
