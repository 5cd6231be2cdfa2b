package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is how long a Watcher waits for more events before firing.
const DefaultDebounce = 250 * time.Millisecond

// ReloadFunc is called once per debounced burst of changes.
type ReloadFunc func(ctx context.Context) error

// Watcher fires a ReloadFunc when one file changes on disk.
//
// The parent directory is watched rather than the file itself, so editors
// that save by rename-and-replace are still observed. Bursts of events are
// collapsed into one call after the debounce window.
type Watcher struct {
	path     string
	debounce time.Duration
	reload   ReloadFunc
	log      logrus.FieldLogger
	watcher  *fsnotify.Watcher
}

// NewWatcher prepares a watcher on path. debounce ≤ 0 uses DefaultDebounce.
func NewWatcher(path string, debounce time.Duration, reload ReloadFunc, log logrus.FieldLogger) (*Watcher, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("loader: watch %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("loader: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("loader: watch %s: %w", path, err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		reload:   reload,
		log:      log.WithField("path", abs),
		watcher:  fw,
	}, nil
}

// Run blocks until ctx is done, calling reload after each debounced change.
// Reload errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer, timerC = nil, nil
			if err := w.reload(ctx); err != nil {
				w.log.WithError(err).Warn("reload failed")
			} else {
				w.log.Info("reloaded")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watch error")
		}
	}
}
