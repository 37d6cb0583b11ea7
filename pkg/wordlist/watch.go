package wordlist

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// ChangeKind says what happened to a list file.
type ChangeKind int

const (
	ListAdded ChangeKind = iota
	ListRemoved
	ListModified
)

func (k ChangeKind) String() string {
	switch k {
	case ListAdded:
		return "added"
	case ListRemoved:
		return "removed"
	case ListModified:
		return "modified"
	}
	return "unknown"
}

// Change is one event from Watcher.
type Change struct {
	Kind ChangeKind
	Name string
	Path string
}

// Watcher reports changes to the .txt files of a catalog directory.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan Change
	errors  chan error
}

// Watch starts watching dir. Call Run to start delivering changes.
func Watch(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		if cerr := fw.Close(); cerr != nil {
			log.Warnf("Failed to close watcher: %v", cerr)
		}
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	return &Watcher{
		watcher: fw,
		changes: make(chan Change, 16),
		errors:  make(chan error, 1),
	}, nil
}

// Changes delivers list changes until Run returns.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Errors delivers watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Run pumps fsnotify events until ctx is done or the watcher is closed.
// It closes the Changes channel when it returns.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.changes)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			change, keep := translate(ev)
			if !keep {
				continue
			}
			log.Debugf("Word list %s %s", change.Name, change.Kind)
			select {
			case w.changes <- change:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				log.Warnf("Dropped watcher error: %v", err)
			}
		}
	}
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func translate(ev fsnotify.Event) (Change, bool) {
	if !IsListFile(ev.Name) {
		return Change{}, false
	}
	change := Change{Name: NameOf(ev.Name), Path: filepath.Clean(ev.Name)}
	switch {
	case ev.Has(fsnotify.Create):
		change.Kind = ListAdded
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		change.Kind = ListRemoved
	case ev.Has(fsnotify.Write):
		change.Kind = ListModified
	default:
		return Change{}, false
	}
	return change, true
}
