// If you are AI: This file implements HTTP API handlers.
// Every request reloads the save through the store; saves are small.

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"runtime/debug"

	"soledit/internal/core/bus"
	"soledit/internal/core/protocol/amf0"
	"soledit/internal/core/protocol/sol"
	"soledit/internal/export"
	"soledit/internal/game/jy3"
	"soledit/internal/store"
)

// ServerResponse represents the /api/server response.
type ServerResponse struct {
	Version         string   `json:"version"`
	Uptime          int64    `json:"uptime"` // seconds
	GoVersion       string   `json:"go_version"`
	SavePath        string   `json:"save_path"`
	EnabledServices []string `json:"enabled_services"`
}

// FeedInfo represents information about a change feed.
type FeedInfo struct {
	Path            string           `json:"path"`
	HasPublisher    bool             `json:"has_publisher"`
	SubscriberCount int              `json:"subscriber_count"`
	LastEvent       *bus.ChangeEvent `json:"last_event,omitempty"`
}

// FeedsResponse represents the /api/feeds response.
type FeedsResponse struct {
	Feeds []FeedInfo `json:"feeds"`
}

// DocumentResponse represents the /api/document response.
type DocumentResponse struct {
	Path    string         `json:"path"`
	Name    string         `json:"name"`
	Framed  bool           `json:"framed"`
	Partial bool           `json:"partial,omitempty"`
	Warning string         `json:"warning,omitempty"`
	Body    *amf0.Document `json:"body"`
}

// ValueResponse represents the /api/value response.
type ValueResponse struct {
	Path  string     `json:"path"`
	Kind  string     `json:"kind"`
	Value amf0.Value `json:"value"`
}

// SkillsResponse represents the /api/skills response.
type SkillsResponse struct {
	Skills []jy3.Skill `json:"skills"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleServer handles GET /api/server.
// Returns server version, uptime, and enabled services.
func (s *Service) handleServer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	response := ServerResponse{
		Version:         version(),
		Uptime:          getCurrentTime() - s.startTime,
		GoVersion:       runtime.Version(),
		SavePath:        s.path,
		EnabledServices: []string{"api", "live"},
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleFeeds handles GET /api/feeds.
// Returns watched files with publisher/subscriber info.
func (s *Service) handleFeeds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	keys := s.registry.List()
	feeds := make([]FeedInfo, 0, len(keys))
	for _, key := range keys {
		feed := s.registry.Get(key)
		if feed == nil {
			continue
		}
		feeds = append(feeds, FeedInfo{
			Path:            key.String(),
			HasPublisher:    feed.HasPublisher(),
			SubscriberCount: feed.SubscriberCount(),
			LastEvent:       feed.Last(),
		})
	}

	s.writeJSON(w, http.StatusOK, FeedsResponse{Feeds: feeds})
}

// handleDocument handles GET /api/document.
// A truncated save is served with partial set.
func (s *Service) handleDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	f, warn, ok := s.load(w)
	if !ok {
		return
	}
	response := DocumentResponse{
		Path:   s.path,
		Name:   f.Name,
		Framed: f.Framed,
		Body:   f.Body,
	}
	if warn != nil {
		response.Partial = true
		response.Warning = warn.Error()
	}
	s.writeJSON(w, http.StatusOK, response)
}

// handleValue handles GET /api/value?path=v.14.
func (s *Service) handleValue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	path := r.URL.Query().Get("path")
	if path == "" {
		s.writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	f, _, ok := s.load(w)
	if !ok {
		return
	}
	v, err := jy3.GetPath(f.Body, path)
	switch {
	case errors.Is(err, jy3.ErrPathNotFound), errors.Is(err, jy3.ErrNotObject):
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, ValueResponse{Path: path, Kind: v.Kind().String(), Value: v})
}

// handleSkills handles GET /api/skills.
func (s *Service) handleSkills(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	f, _, ok := s.load(w)
	if !ok {
		return
	}
	skills := jy3.Skills(f.Body)
	if skills == nil {
		skills = []jy3.Skill{}
	}
	s.writeJSON(w, http.StatusOK, SkillsResponse{Skills: skills})
}

// handleExport handles GET /api/export?format=yaml.
func (s *Service) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	codec, err := export.ByName(format)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	f, _, ok := s.load(w)
	if !ok {
		return
	}
	out, err := codec.Marshal(f.Body)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

var contentTypes = map[string]string{
	"json":    "application/json",
	"yaml":    "application/yaml",
	"msgpack": "application/msgpack",
	"cbor":    "application/cbor",
}

// load reads the save. It writes the error response itself and reports ok=false
// when nothing usable was read; a partial read comes back with warn set.
func (s *Service) load(w http.ResponseWriter) (f *sol.File, warn error, ok bool) {
	f, err := s.store.Load(s.path)
	switch {
	case err == nil:
		return f, nil, true
	case f != nil:
		return f, err, true
	case errors.Is(err, store.ErrNotExist):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, sol.ErrUnsupportedVersion), errors.Is(err, sol.ErrBadHeader):
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
	return nil, nil, false
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "devel"
}

// writeJSON writes a JSON response.
func (s *Service) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func (s *Service) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}
