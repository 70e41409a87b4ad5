// If you are AI: This file provides HTTP API service integration.
// The API exposes the watched save file and change feeds read-only.

package api

import (
	"net/http"
	"time"

	"soledit/internal/core/bus"
	"soledit/internal/store"
)

// Service provides HTTP API functionality.
type Service struct {
	registry  *bus.Registry
	store     *store.Store
	path      string
	startTime int64
}

// NewService creates a new API service serving the save at path.
func NewService(registry *bus.Registry, st *store.Store, path string) *Service {
	return &Service{
		registry:  registry,
		store:     st,
		path:      path,
		startTime: getCurrentTime(),
	}
}

// RegisterRoutes registers API routes on the provided mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/server", s.handleServer)
	mux.HandleFunc("/api/feeds", s.handleFeeds)
	mux.HandleFunc("/api/document", s.handleDocument)
	mux.HandleFunc("/api/value", s.handleValue)
	mux.HandleFunc("/api/skills", s.handleSkills)
	mux.HandleFunc("/api/export", s.handleExport)
}

// getCurrentTime returns current Unix timestamp.
// Extracted for testability.
func getCurrentTime() int64 {
	return time.Now().Unix()
}
