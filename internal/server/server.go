// If you are AI: This file implements the HTTP server lifecycle and routing.

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"soledit/internal/config"
	"soledit/internal/core/bus"
	"soledit/internal/logging"
	"soledit/internal/store"
	"soledit/internal/svc/api"
	"soledit/internal/svc/health"
	"soledit/internal/svc/live"
)

// Deps are the shared components the services read from.
type Deps struct {
	Registry *bus.Registry
	Store    *store.Store
	SavePath string
	Logger   logging.Logger
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	healthSvc  *health.Service
	apiSvc     *api.Service
	liveSvc    *live.Service
}

// New creates a new server instance with the given configuration.
// The server is not started until Start is called.
func New(cfg *config.Config, deps Deps) *Server {
	mux := http.NewServeMux()

	healthSvc := health.New(deps.SavePath)
	healthSvc.RegisterRoutes(mux)

	apiSvc := api.NewService(deps.Registry, deps.Store, deps.SavePath)
	apiSvc.RegisterRoutes(mux)

	liveSvc := live.NewService(deps.Registry, deps.SavePath, cfg.Watch.Buffer, deps.Logger)
	liveSvc.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		healthSvc:  healthSvc,
		apiSvc:     apiSvc,
		liveSvc:    liveSvc,
	}
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start begins serving HTTP requests.
// This method blocks until the server is stopped or encounters an error.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
// Returns an error if shutdown fails or ctx expires first.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ShutdownWithTimeout stops the server with a fixed 5-second timeout.
// This is a convenience wrapper around Shutdown.
func (s *Server) ShutdownWithTimeout() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}
