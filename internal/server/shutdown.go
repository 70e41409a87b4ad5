// If you are AI: This file handles graceful shutdown orchestration for the serve and watch commands.

package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Stopper is anything that can be shut down within a deadline.
type Stopper interface {
	Shutdown(ctx context.Context) error
}

// ShutdownHandler manages graceful shutdown on SIGINT or SIGTERM.
// Its context is cancelled when shutdown begins, which stops background workers
// such as the save watcher.
type ShutdownHandler struct {
	stopper Stopper
	ctx     context.Context
	cancel  context.CancelFunc
	signals chan os.Signal
	timeout time.Duration
}

// NewShutdownHandler creates a handler that listens for termination signals.
// stopper may be nil when only the context is needed.
func NewShutdownHandler(ctx context.Context, stopper Stopper) *ShutdownHandler {
	shutdownCtx, cancel := context.WithCancel(ctx)
	h := &ShutdownHandler{
		stopper: stopper,
		ctx:     shutdownCtx,
		cancel:  cancel,
		signals: make(chan os.Signal, 1),
		timeout: 5 * time.Second,
	}
	signal.Notify(h.signals, os.Interrupt, syscall.SIGTERM)
	return h
}

// Wait blocks until a termination signal arrives or the parent context ends,
// then cancels the handler context and shuts the stopper down.
func (h *ShutdownHandler) Wait() error {
	defer signal.Stop(h.signals)

	select {
	case <-h.signals:
	case <-h.ctx.Done():
	}

	// Cancel context to signal shutdown
	h.cancel()

	if h.stopper == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	return h.stopper.Shutdown(shutdownCtx)
}

// Stop triggers shutdown as if a signal had arrived.
func (h *ShutdownHandler) Stop() {
	h.cancel()
}

// Context returns the shutdown context that is cancelled when shutdown begins.
func (h *ShutdownHandler) Context() context.Context {
	return h.ctx
}
