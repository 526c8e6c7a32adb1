// Package watcher re-runs the project consistency check whenever new
// folders appear under the local storage root.
package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"datashuttle/internal/alerts"
)

// Config contains watcher settings.
type Config struct {
	Debounce       time.Duration // delay before a burst of events triggers a check
	IgnorePatterns []string      // folder-name globs that never trigger a check
	SubPrefix      string        // subject folders get added to the watch set
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debounce:       2 * time.Second,
		IgnorePatterns: DefaultIgnorePatterns(),
		SubPrefix:      "sub",
	}
}

// Summary contains stats from a watch session.
type Summary struct {
	ChecksRun     int
	WarningsSeen  int
	EventsIgnored int
	Duration      time.Duration
}

// CheckFunc runs a project validation pass and returns the warnings it
// produced. Errors from a pass are logged, not fatal; the watcher keeps
// running.
type CheckFunc func() ([]alerts.Warning, error)

// Watcher monitors the project tree for new folders and triggers
// revalidation.
type Watcher struct {
	config    *Config
	check     CheckFunc
	fsWatcher *fsnotify.Watcher
	filter    *FolderFilter
	debouncer *Debouncer
	done      chan struct{}
	wg        sync.WaitGroup
	startTime time.Time

	mu            sync.Mutex
	checksRun     int
	warningsSeen  int
	eventsIgnored int
}

// New creates a Watcher with the given configuration. If config is nil,
// defaults are used. check is invoked after each debounced folder event.
func New(config *Config, check CheckFunc) *Watcher {
	if config == nil {
		config = DefaultConfig()
	}
	w := &Watcher{
		config: config,
		check:  check,
		filter: NewFolderFilter(config.IgnorePatterns),
		done:   make(chan struct{}),
	}
	w.debouncer = NewDebouncer(config.Debounce, w.runCheck)
	return w
}

// Start begins watching the given directories; the first is expected to be
// the top-level folder holding the subject folders, the rest existing
// subject folders. The watcher runs until Stop is called.
func (w *Watcher) Start(dirs []string) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			w.fsWatcher.Close()
			return err
		}
		if err := w.fsWatcher.Add(absDir); err != nil {
			w.fsWatcher.Close()
			return err
		}
	}

	w.startTime = time.Now()
	w.done = make(chan struct{})

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop shuts down the watcher and returns a summary of the session.
func (w *Watcher) Stop() *Summary {
	close(w.done)
	w.wg.Wait()
	w.debouncer.CancelAll()

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	return &Summary{
		ChecksRun:     w.checksRun,
		WarningsSeen:  w.warningsSeen,
		EventsIgnored: w.eventsIgnored,
		Duration:      time.Since(w.startTime),
	}
}

// processEvents handles file system events from fsnotify.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				w.handleCreate(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("watch error")
		}
	}
}

// handleCreate processes a single create event. Only directories matter;
// anything matching the ignore patterns is skipped.
func (w *Watcher) handleCreate(path string) {
	if w.filter.ShouldIgnore(path) {
		w.countIgnored()
		return
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		w.countIgnored()
		return
	}

	// A new subject folder joins the watch set so that session folders
	// created inside it are seen too.
	if strings.HasPrefix(filepath.Base(path), w.config.SubPrefix+"-") {
		if err := w.fsWatcher.Add(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("could not watch new subject folder")
		}
	}

	w.debouncer.Add(path)
}

// runCheck is the debounced callback: it runs one validation pass and
// records the outcome.
func (w *Watcher) runCheck(path string) {
	warnings, err := w.check()
	if err != nil {
		log.Warn().Err(err).Str("trigger", path).Msg("validation pass failed")
		return
	}

	w.mu.Lock()
	w.checksRun++
	w.warningsSeen += len(warnings)
	w.mu.Unlock()

	log.Debug().
		Str("trigger", path).
		Int("warnings", len(warnings)).
		Msg("validation pass complete")
}

func (w *Watcher) countIgnored() {
	w.mu.Lock()
	w.eventsIgnored++
	w.mu.Unlock()
}

// IsRunning returns true if the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	select {
	case <-w.done:
		return false
	default:
		return w.fsWatcher != nil
	}
}
