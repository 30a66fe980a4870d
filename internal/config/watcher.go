package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/EKINSOL-DEV/crewhub/internal/logging"
	"github.com/EKINSOL-DEV/crewhub/internal/models"
)

// settingsDebounce is how long a burst of file events is allowed to
// settle before settings are reloaded once.
const settingsDebounce = 100 * time.Millisecond

// SettingsWatcher watches ~/.crewhub/settings.yaml and delivers
// debounced reloads. The callback runs on a watcher goroutine.
type SettingsWatcher struct {
	fsWatcher *fsnotify.Watcher
	logger    *logging.Logger
	onChange  func(*models.Settings)
	done      chan struct{}

	debounceMu sync.Mutex
	debounce   map[string]*time.Timer
}

// NewSettingsWatcher creates a watcher that calls onChange with freshly
// loaded settings after each change to the settings file.
func NewSettingsWatcher(logger *logging.Logger, onChange func(*models.Settings)) (*SettingsWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &SettingsWatcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		onChange:  onChange,
		done:      make(chan struct{}),
		debounce:  make(map[string]*time.Timer),
	}, nil
}

// Start begins watching. The global directory is created first: a
// watch on a missing directory fails outright.
func (w *SettingsWatcher) Start() error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *SettingsWatcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *SettingsWatcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("settings watcher error", zap.Error(err))
		}
	}
}

func (w *SettingsWatcher) handleEvent(event fsnotify.Event) {
	// Accept write, create, and rename events. Rename matters: atomic
	// writes (write tmp, rename over target) surface as Create/Rename
	// on the target file, not Write.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if filepath.Base(event.Name) != SettingsFileName {
		return
	}

	w.debounceEvent(event.Name, w.reload)
}

// debounceEvent collapses a burst of events for the same path into one
// callback after the burst settles.
func (w *SettingsWatcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(settingsDebounce, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

func (w *SettingsWatcher) reload() {
	settings, err := LoadSettings()
	if err != nil {
		w.logger.Warn("failed to reload settings", zap.Error(err))
		return
	}
	w.logger.Info("settings reloaded")
	if w.onChange != nil {
		w.onChange(settings)
	}
}
