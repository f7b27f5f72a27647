// Package watch monitors the slideshow folder so the catalog can be
// reloaded when images are added or removed while playback runs.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"glowframe/internal/log"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// Watcher monitors the image folder for changes using fsnotify. Events for
// matching files are coalesced into a single-slot change channel: the play
// loop drains it between ticks and reloads the catalog, so a burst of file
// copies causes one reload, not one per file.
type Watcher struct {
	folder  string
	matcher glob.Glob

	changes  chan struct{}
	stopChan chan struct{}

	fsWatcher *fsnotify.Watcher

	mutex   sync.Mutex
	running bool
}

// New creates a watcher for the given folder. Only events whose file name
// matches pattern are reported.
func New(folder, pattern string) (*Watcher, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return nil, fmt.Errorf("error accessing folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", folder)
	}

	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid image pattern %q: %w", pattern, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		folder:    folder,
		matcher:   matcher,
		changes:   make(chan struct{}, 1),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Changes returns the channel that signals catalog-affecting folder changes
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Start begins watching the folder
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	if err := w.fsWatcher.Add(w.folder); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.folder, err)
	}

	go w.loop()

	log.LogWithFields(log.F("folder", w.folder)).Info("Watching image folder")
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			log.LogWithFields(log.F("file", event.Name), log.F("op", event.Op.String())).Debug("Image folder changed")
			// Coalesce: if a change is already pending, drop this one
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("Watcher error: %v", err)
		case <-w.stopChan:
			return
		}
	}
}

// relevant reports whether the event concerns a matching image file
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) &&
		!event.Op.Has(fsnotify.Rename) && !event.Op.Has(fsnotify.Write) {
		return false
	}
	return w.matcher.Match(filepath.Base(event.Name))
}

// Stop halts the watcher
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopChan)
	w.fsWatcher.Close()
}
