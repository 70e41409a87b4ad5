// If you are AI: This file provides change feed service integration.
// The service is integrated into the main HTTP server.

package live

import (
	"net/http"

	"soledit/internal/core/bus"
	"soledit/internal/logging"
)

// Service provides the WebSocket change feed.
type Service struct {
	handler *Handler
}

// NewService creates a new change feed service.
func NewService(registry *bus.Registry, defaultPath string, capacity uint32, log logging.Logger) *Service {
	return &Service{
		handler: NewHandler(registry, defaultPath, capacity, log),
	}
}

// RegisterRoutes registers change feed routes on the provided mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.handler.RegisterRoutes(mux)
}
