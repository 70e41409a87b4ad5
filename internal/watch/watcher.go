// If you are AI: This file implements the save file watcher.
// It watches the file's directory with fsnotify, debounces bursts of events,
// reloads through the store and publishes ChangeEvents on the file's feed.

package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"soledit/internal/core/bus"
	"soledit/internal/core/protocol/amf0"
	"soledit/internal/logging"
	"soledit/internal/store"
)

// ErrFeedBusy means another watcher already publishes on the feed.
var ErrFeedBusy = errors.New("watch: feed already has a publisher")

var nextPublisherID atomic.Uint64

// Options configures a Watcher.
type Options struct {
	Path     string
	Debounce time.Duration
	Store    *store.Store
	Feed     *bus.Feed
	Logger   logging.Logger   // Optional
	Now      func() time.Time // Optional clock
}

// Watcher publishes changes of one save file.
type Watcher struct {
	path     string
	debounce time.Duration
	store    *store.Store
	feed     *bus.Feed
	log      logging.Logger
	now      func() time.Time

	last   *amf0.Document
	exists bool
}

// New creates a Watcher. Store and Feed are required.
func New(opts Options) (*Watcher, error) {
	if opts.Path == "" || opts.Store == nil || opts.Feed == nil {
		return nil, errors.New("watch: path, store and feed are required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	return &Watcher{
		path:     path,
		debounce: opts.Debounce,
		store:    opts.Store,
		feed:     opts.Feed,
		log:      logging.OrNop(opts.Logger),
		now:      opts.Now,
	}, nil
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.prime()

	// Attached only once events are flowing, so HasPublisher means live
	if !w.feed.AttachPublisher(nextPublisherID.Add(1)) {
		return ErrFeedBusy
	}
	defer w.feed.DetachPublisher()

	w.log.Info("watching save", logging.Fields{"path": w.path, "debounce": w.debounce.String()})

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if w.debounce <= 0 {
				w.reload()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			w.reload()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", logging.Fields{"path": w.path, "err": err})
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// prime loads the current contents without publishing.
func (w *Watcher) prime() {
	f, err := w.store.Load(w.path)
	if err != nil {
		if !errors.Is(err, store.ErrNotExist) {
			w.log.Warn("initial load failed", logging.Fields{"path": w.path, "err": err})
		}
		if f != nil {
			w.last, w.exists = f.Body, true
		}
		return
	}
	w.last, w.exists = f.Body, true
}

// reload reads the file and publishes what changed since the last load.
func (w *Watcher) reload() {
	f, err := w.store.Load(w.path)
	switch {
	case errors.Is(err, store.ErrNotExist):
		if w.exists {
			w.exists = false
			w.last = nil
			w.feed.Publish(bus.NewChangeEvent(bus.EventRemoved, w.path, w.now()))
		}
		return
	case err != nil && f == nil:
		ev := bus.NewChangeEvent(bus.EventError, w.path, w.now())
		ev.Err = err.Error()
		w.feed.Publish(ev)
		return
	}

	c := Diff(w.last, f.Body)
	w.last, w.exists = f.Body, true

	ev := bus.NewChangeEvent(bus.EventChanged, w.path, w.now())
	ev.Added, ev.Removed, ev.Changed = c.Added, c.Removed, c.Changed
	if err != nil {
		// Partial decode: report what was read along with the error
		ev.Type, ev.Kind, ev.Err = bus.EventError, bus.EventError.String(), err.Error()
	} else if c.Empty() {
		w.log.Debug("save rewritten without changes", logging.Fields{"path": w.path})
		return
	}
	w.log.Debug("save changed", logging.Fields{
		"path": w.path, "added": len(c.Added), "removed": len(c.Removed), "changed": len(c.Changed),
	})
	w.feed.Publish(ev)
}
