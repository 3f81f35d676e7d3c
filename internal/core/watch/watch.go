// Package watch reports edits to card source files so a running drill can
// reload them.
package watch

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const debounceDelay = 200 * time.Millisecond

// ErrNothingToWatch is returned when none of the requested directories could
// be watched.
var ErrNothingToWatch = errors.New("no source directory can be watched")

// Event signals that a CSV file in a watched directory changed. Bursts of
// filesystem events are coalesced into one Event naming the last path seen.
type Event struct {
	Path      string
	Timestamp time.Time
}

// Watcher watches directories for changes to .csv files using fsnotify.
// Subdirectories are not watched.
type Watcher struct {
	watcher *fsnotify.Watcher
	log     zerolog.Logger
	events  chan Event

	mu     sync.Mutex
	timer  *time.Timer
	closed bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New starts watching dirs. Directories that cannot be watched, typically
// because they do not exist, are logged and skipped.
func New(dirs []string, log zerolog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs = slices.Clone(dirs)
	slices.Sort(dirs)
	dirs = slices.Compact(dirs)

	added := 0
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("cannot watch source directory")
			continue
		}
		added++
	}
	if added == 0 {
		_ = fw.Close()
		return nil, ErrNothingToWatch
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		watcher: fw,
		log:     log,
		// One pending event is enough: the receiver reloads everything.
		events: make(chan Event, 1),
		ctx:    ctx,
		cancel: cancel,
	}

	w.wg.Add(1)
	go w.run()

	log.Debug().Int("dirs", added).Msg("watching sources")
	return w, nil
}

// Events returns the channel of debounced change events. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops watching and closes the events channel.
func (w *Watcher) Close() error {
	w.cancel()

	w.mu.Lock()
	if !w.closed {
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
		}
		close(w.events)
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}
	if !IsCSV(event.Name) {
		return
	}

	path := event.Name
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, func() {
		w.emit(path)
	})
}

func (w *Watcher) emit(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	w.log.Debug().Str("path", path).Msg("source changed")
	select {
	case w.events <- Event{Path: path, Timestamp: time.Now()}:
	default:
		// a reload is already pending
	}
}

// IsCSV reports whether name looks like a card source file. Editor swap and
// backup files are ignored.
func IsCSV(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".csv")
}
