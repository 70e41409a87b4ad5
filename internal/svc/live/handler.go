// If you are AI: This file implements the WebSocket handler for change feed requests.
// Handles GET /ws/changes?path= requests and manages subscriber lifecycle.

package live

import (
	"net/http"

	"github.com/gorilla/websocket"

	"soledit/internal/core/bus"
	"soledit/internal/logging"
)

// Handler handles change feed WebSocket requests.
type Handler struct {
	registry    *bus.Registry
	defaultPath string
	capacity    uint32
	log         logging.Logger
	upgrader    websocket.Upgrader
}

// NewHandler creates a new change feed handler.
// defaultPath is served when the request names no path.
func NewHandler(registry *bus.Registry, defaultPath string, capacity uint32, log logging.Logger) *Handler {
	if capacity == 0 {
		capacity = 64
	}
	return &Handler{
		registry:    registry,
		defaultPath: defaultPath,
		capacity:    capacity,
		log:         logging.OrNop(log),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Local tool; any page may follow the feed
				return true
			},
		},
	}
}

// ServeHTTP upgrades the connection and streams change events as JSON text frames.
// Endpoint: GET /ws/changes?path={save path}
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		path = h.defaultPath
	}
	if path == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Get feed from registry
	feed := h.registry.Get(bus.NewFeedKey(path))
	if feed == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	// Check that something is watching the file
	if !feed.HasPublisher() {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade failed, response already sent
		return
	}

	sub := NewSubscriber(conn, feed)
	defer func() {
		sub.Detach()
		conn.Close()
	}()

	sub.Attach(h.capacity)
	if err := sub.WriteHello(); err != nil {
		return
	}

	// Reader detects client close; gorilla requires reading to process control frames
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	if err := sub.ProcessEvents(r.Context(), closed); err != nil {
		h.log.Debug("change feed client gone", logging.Fields{"path": path, "err": err})
	}
}

// RegisterRoutes registers change feed routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/changes", h.ServeHTTP)
}
