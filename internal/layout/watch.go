package layout

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to one layout file. The parent directory is watched
// so editors that save by rename are still seen.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	changed chan struct{}
	done    chan struct{}
}

func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("layout: watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("layout: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("layout: watch %s: %w", path, err)
	}
	w := &Watcher{
		path:    abs,
		watcher: fw,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("layout watcher: %v", err)
		}
	}
}

// Changed is signalled, at most once per burst, when the file is written.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Poll reports whether the file changed since the last call. It never blocks.
func (w *Watcher) Poll() bool {
	select {
	case <-w.changed:
		return true
	default:
		return false
	}
}

func (w *Watcher) Path() string { return w.path }

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
