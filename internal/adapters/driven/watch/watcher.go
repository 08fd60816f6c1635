// Package watch notifies callers when library files change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/suppdraft/internal/logger"
)

// DefaultInterval is the minimum time between change notifications.
const DefaultInterval = 250 * time.Millisecond

// Watcher watches a set of files and calls back once per burst of changes.
//
// Directories are watched instead of the files themselves so that editors
// which save by renaming a temporary file are still seen.
type Watcher struct {
	files   map[string]bool
	dirs    []string
	limiter *rate.Limiter
}

// New creates a watcher for paths. Empty paths are ignored.
func New(interval time.Duration, paths ...string) (*Watcher, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	w := &Watcher{
		files:   make(map[string]bool),
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}

	seen := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}

	if len(w.files) == 0 {
		return nil, errors.New("no files to watch")
	}
	return w, nil
}

// Files returns the number of watched files.
func (w *Watcher) Files() int {
	return len(w.files)
}

// Run blocks until ctx is cancelled, calling onChange after writes,
// creates or renames of a watched file. Events arriving while the
// limiter is saturated are folded into a single call.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("watching %s", dir)
	}

	var pending string
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("%s: %s", event.Op, event.Name)
			if pending == "" {
				timer.Reset(w.limiter.Reserve().Delay())
			}
			pending = event.Name

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-timer.C:
			if pending != "" {
				onChange(pending)
				pending = ""
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !w.files[filepath.Clean(event.Name)] {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
