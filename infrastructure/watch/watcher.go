// Package watch reports changes to the recording store directory.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Skryldev/audio-core/pkg/logger"
)

// Op is the kind of change observed
type Op string

const (
	OpCreated Op = "created"
	OpWritten Op = "written"
	OpRemoved Op = "removed"
	OpRenamed Op = "renamed"
)

// Event is one change to a file directly under the store root
type Event struct {
	Op       Op
	Filename string
}

// Watcher observes a single flat directory
type Watcher struct {
	root string
	log  *logger.Logger
}

// NewWatcher creates a watcher for root
func NewWatcher(root string, log *logger.Logger) *Watcher {
	if log == nil {
		log = logger.NewNop()
	}
	return &Watcher{root: root, log: log.Named("watch")}
}

// Run creates root if needed and calls fn for every file event until ctx
// is done or the underlying watcher closes.
func (w *Watcher) Run(ctx context.Context, fn func(Event)) error {
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return fmt.Errorf("failed to create store root: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}

	w.log.Info("watching store", zap.String("root", w.root))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if out, ok := translate(ev); ok {
				fn(out)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}

func translate(ev fsnotify.Event) (Event, bool) {
	name := filepath.Base(ev.Name)
	switch {
	case ev.Has(fsnotify.Create):
		return Event{Op: OpCreated, Filename: name}, true
	case ev.Has(fsnotify.Write):
		return Event{Op: OpWritten, Filename: name}, true
	case ev.Has(fsnotify.Remove):
		return Event{Op: OpRemoved, Filename: name}, true
	case ev.Has(fsnotify.Rename):
		return Event{Op: OpRenamed, Filename: name}, true
	}
	return Event{}, false
}
