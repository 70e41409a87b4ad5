// If you are AI: This file implements the long-running watch and serve subcommands.
// Both run a save watcher until SIGINT or SIGTERM.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"soledit/internal/core/bus"
	"soledit/internal/logging"
	"soledit/internal/server"
	"soledit/internal/watch"
)

// newWatcher creates the save's feed in registry and a watcher publishing on it.
func (a *app) newWatcher(registry *bus.Registry, path string) (*watch.Watcher, *bus.Feed, error) {
	feed, _ := registry.GetOrCreate(bus.NewFeedKey(path))
	w, err := watch.New(watch.Options{
		Path:     path,
		Debounce: a.cfg.Watch.Debounce,
		Store:    a.store,
		Feed:     feed,
		Logger:   a.log,
	})
	if err != nil {
		return nil, nil, err
	}
	return w, feed, nil
}

func (a *app) watch() error {
	path, err := a.savePath()
	if err != nil {
		return err
	}
	h := server.NewShutdownHandler(context.Background(), nil)
	done := make(chan error, 1)
	go func() {
		done <- a.follow(h.Context(), bus.NewRegistry(), path)
		h.Stop()
	}()
	if err := h.Wait(); err != nil {
		return err
	}
	return <-done
}

// follow prints the save's change events until ctx is cancelled.
func (a *app) follow(ctx context.Context, registry *bus.Registry, path string) error {
	w, feed, err := a.newWatcher(registry, path)
	if err != nil {
		return err
	}
	// Deferred first so it runs once the subscriber and publisher are gone
	defer registry.Remove(feed.Key())
	sub, id := feed.AttachSubscriber(a.cfg.Watch.Buffer, bus.BackpressureDropOldest)
	defer feed.DetachSubscriber(id)
	sub.SetEventHandler(func(ev *bus.ChangeEvent) { a.printEvent(ev) })

	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()
	fmt.Fprintf(a.out, "watching %s\n", keyCol(path))

	for {
		select {
		case err := <-errc:
			return err
		case <-sub.Ready():
			sub.Process(int(a.cfg.Watch.Buffer))
		}
	}
}

func (a *app) printEvent(ev *bus.ChangeEvent) {
	ts := ev.Time.Format("15:04:05")
	switch ev.Type {
	case bus.EventRemoved:
		fmt.Fprintf(a.out, "%s %s\n", ts, errCol("save removed"))
		return
	case bus.EventError:
		fmt.Fprintf(a.out, "%s %s %s\n", ts, errCol("error:"), ev.Err)
	default:
		fmt.Fprintf(a.out, "%s %s\n", ts, warnCol("changed"))
	}
	lines := func(mark string, keys []string, style func(a ...interface{}) string) {
		if len(keys) > 0 {
			fmt.Fprintf(a.out, "  %s %s\n", style(mark), strings.Join(keys, " "))
		}
	}
	lines("+", ev.Added, okCol)
	lines("-", ev.Removed, errCol)
	lines("~", ev.Changed, keyCol)
}

func (a *app) serve() error {
	path, err := a.savePath()
	if err != nil {
		return err
	}
	registry := bus.NewRegistry()
	w, feed, err := a.newWatcher(registry, path)
	if err != nil {
		return err
	}
	defer registry.Remove(feed.Key())

	srv := server.New(a.cfg, server.Deps{
		Registry: registry,
		Store:    a.store,
		SavePath: path,
		Logger:   a.log,
	})
	h := server.NewShutdownHandler(context.Background(), srv)

	failed := make(chan error, 2)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- fmt.Errorf("http server: %w", err)
			h.Stop()
		}
	}()
	watching := make(chan struct{})
	go func() {
		defer close(watching)
		if err := w.Run(h.Context()); err != nil {
			failed <- fmt.Errorf("watcher: %w", err)
			h.Stop()
		}
	}()
	a.log.Info("serving", logging.Fields{"addr": srv.Addr(), "save": path})

	shutdownErr := h.Wait()
	<-watching
	select {
	case err := <-failed:
		return err
	default:
	}
	if shutdownErr != nil {
		return shutdownErr
	}
	a.log.Info("server shut down cleanly", nil)
	return nil
}
