// If you are AI: This file implements the health check endpoint for monitoring and tests.

package health

import (
	"encoding/json"
	"net/http"
	"os"
)

// Status is the health response body.
type Status struct {
	Status   string `json:"status"`
	SavePath string `json:"save_path,omitempty"`
	SaveOK   bool   `json:"save_ok"`
}

// Service provides health check functionality.
type Service struct {
	savePath string
}

// New creates a new health service reporting on the save at savePath.
func New(savePath string) *Service {
	return &Service{savePath: savePath}
}

// RegisterRoutes adds health check routes to the provided mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.handleHealth)
}

// handleHealth always returns 200 while the process serves requests.
// save_ok reports whether the save file is currently readable.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	st := Status{Status: "ok", SavePath: s.savePath}
	if s.savePath != "" {
		if info, err := os.Stat(s.savePath); err == nil && info.Mode().IsRegular() {
			st.SaveOK = true
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(st)
}
