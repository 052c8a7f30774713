// Package watcher surfaces raw directory-change notifications for the
// watched image folders. Events carry no diff information; the playback
// controller debounces them and re-enumerates to discover what changed.
package watcher

import (
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan struct{}
	done   chan struct{}
}

// New watches the given folders. Folders that cannot be watched are
// logged and skipped; the slideshow still runs without change
// reconciliation for them.
func New(folders []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, folder := range folders {
		if err := fsw.Add(folder); err != nil {
			log.Warnf("cannot watch folder %s: %v", folder, err)
		}
	}

	w := &Watcher{
		fsw:    fsw,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case _, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// Coalesce: the controller only restarts its debounce
			// timer per notification, so a pending signal is enough.
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warnf("watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Events yields one signal per burst of raw changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
