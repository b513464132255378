// Package watcher monitors the destination directories so out-of-process
// changes to the staged trees are visible live.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"aiforge/collector"
	"aiforge/stager"
	"aiforge/stager/models"
)

// Op identifies what happened to a staged file.
type Op int

const (
	FileCreated Op = iota
	FileModified
	FileRemoved
)

func (o Op) String() string {
	switch o {
	case FileCreated:
		return "created"
	case FileModified:
		return "modified"
	case FileRemoved:
		return "removed"
	}
	return "unknown"
}

// Event is one observed change to a staged .swift file.
type Event struct {
	Path     string
	Op       Op
	Category models.Category
}

// DestinationWatcher implements live monitoring of both destination
// directories using fsnotify. fsnotify does not watch recursively, so the
// code-examples subdirectories are registered up front and new subdirectories
// are added as they appear.
type DestinationWatcher struct {
	watcher *fsnotify.Watcher
	stager  *stager.Stager
}

// NewDestinationWatcher creates a watcher over the stager's destinations.
func NewDestinationWatcher(s *stager.Stager) (*DestinationWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &DestinationWatcher{watcher: w, stager: s}, nil
}

// Watch starts monitoring and emits events until the context is cancelled.
// Destinations that do not exist yet are skipped; they show up once something
// is staged into them and the watch is restarted.
func (w *DestinationWatcher) Watch(ctx context.Context) (<-chan Event, error) {
	codeDir := w.stager.DestinationDir(models.CodeExamples)
	apiDir := w.stager.DestinationDir(models.APIDocumentation)

	if err := w.addTree(codeDir); err != nil {
		return nil, err
	}
	if err := w.addDir(apiDir); err != nil {
		return nil, err
	}

	events := make(chan Event, 100)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}

				// New subdirectory under the code-examples tree: start
				// watching it too.
				if event.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if isUnder(event.Name, codeDir) {
							_ = w.watcher.Add(event.Name)
						}
						continue
					}
				}

				name := filepath.Base(event.Name)
				if collector.IsHidden(name) || !collector.HasSwiftExtension(name) {
					continue
				}

				var op Op
				switch {
				case event.Op&fsnotify.Create == fsnotify.Create:
					op = FileCreated
				case event.Op&fsnotify.Write == fsnotify.Write:
					op = FileModified
				case event.Op&fsnotify.Remove == fsnotify.Remove,
					event.Op&fsnotify.Rename == fsnotify.Rename:
					op = FileRemoved
				default:
					continue
				}

				category := models.CodeExamples
				if isUnder(event.Name, apiDir) {
					category = models.APIDocumentation
				}

				select {
				case events <- Event{Path: event.Name, Op: op, Category: category}:
				case <-ctx.Done():
					return
				}
			case _, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return events, nil
}

// Stop stops the watcher.
func (w *DestinationWatcher) Stop() error {
	return w.watcher.Close()
}

// addDir registers a single directory, ignoring it when absent.
func (w *DestinationWatcher) addDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return w.watcher.Add(dir)
}

// addTree registers a directory and every subdirectory below it.
func (w *DestinationWatcher) addTree(root string) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && !collector.IsHidden(info.Name()) {
			return w.watcher.Add(path)
		}
		return nil
	})
}

func isUnder(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && rel != "")
}
