// If you are AI: This file contains unit tests for API handlers.
// Tests verify JSON responses and error handling.

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"soledit/internal/core/bus"
	"soledit/internal/core/protocol/amf0"
	"soledit/internal/core/protocol/sol"
	"soledit/internal/store"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "JY2.sol")
	st := store.New(store.Options{})

	f := sol.NewFile("JY2")
	slots := amf0.NewDocument()
	slots.Set("0", amf0.Number(14))
	exp := amf0.NewDocument()
	exp.Set("14", amf0.Number(120))
	f.Body.Set("o", amf0.Object(slots))
	f.Body.Set("v", amf0.Object(exp))
	f.Body.Set("gold", amf0.Number(50))
	if err := st.Save(path, f); err != nil {
		t.Fatalf("Failed to write save: %v", err)
	}
	return NewService(bus.NewRegistry(), st, path), path
}

func get(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", target, nil))
	return w
}

func TestHandleServer(t *testing.T) {
	service, path := newTestService(t)
	w := get(t, service.handleServer, "/api/server")

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response ServerResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Version == "" {
		t.Error("Version should not be empty")
	}
	if response.Uptime < 0 {
		t.Error("Uptime should be non-negative")
	}
	if response.SavePath != path {
		t.Errorf("Expected save path %s, got %s", path, response.SavePath)
	}
}

func TestHandleFeeds(t *testing.T) {
	service, path := newTestService(t)

	w := get(t, service.handleFeeds, "/api/feeds")
	var response FeedsResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Feeds) != 0 {
		t.Errorf("Expected 0 feeds, got %d", len(response.Feeds))
	}

	feed, _ := service.registry.GetOrCreate(bus.NewFeedKey(path))
	feed.AttachPublisher(1)
	feed.AttachSubscriber(4, bus.BackpressureDropOldest)

	w = get(t, service.handleFeeds, "/api/feeds")
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Feeds) != 1 {
		t.Fatalf("Expected 1 feed, got %d", len(response.Feeds))
	}
	info := response.Feeds[0]
	if !info.HasPublisher || info.SubscriberCount != 1 || info.Path != path {
		t.Errorf("Unexpected feed info %+v", info)
	}
}

func TestHandleDocument(t *testing.T) {
	service, _ := newTestService(t)
	w := get(t, service.handleDocument, "/api/document")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"body":{"o":{"0":14},"v":{"14":120},"gold":50}`) {
		t.Errorf("Body not in document order: %s", body)
	}
	if !strings.Contains(body, `"name":"JY2"`) {
		t.Errorf("Missing name: %s", body)
	}
}

func TestHandleDocumentPartial(t *testing.T) {
	service, path := newTestService(t)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data[:len(data)-4], 0o644); err != nil {
		t.Fatal(err)
	}

	w := get(t, service.handleDocument, "/api/document")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var response struct {
		Partial bool            `json:"partial"`
		Warning string          `json:"warning"`
		Body    json.RawMessage `json:"body"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.Partial || response.Warning == "" {
		t.Errorf("Truncated save should be flagged partial: %+v", response)
	}
	if string(response.Body) != `{"o":{"0":14},"v":{"14":120}}` {
		t.Errorf("Unexpected partial body %s", response.Body)
	}
}

func TestHandleValue(t *testing.T) {
	service, _ := newTestService(t)

	w := get(t, service.handleValue, "/api/value?path=v.14")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var response struct {
		Kind  string  `json:"kind"`
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Kind != "number" || response.Value != 120 {
		t.Errorf("Unexpected value %+v", response)
	}

	if w := get(t, service.handleValue, "/api/value?path=v.99"); w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if w := get(t, service.handleValue, "/api/value"); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestHandleSkills(t *testing.T) {
	service, _ := newTestService(t)
	w := get(t, service.handleSkills, "/api/skills")

	var response SkillsResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Skills) != 1 || response.Skills[0].ID != 14 || response.Skills[0].Experience != 120 {
		t.Errorf("Unexpected skills %+v", response.Skills)
	}
}

func TestHandleExport(t *testing.T) {
	service, _ := newTestService(t)

	w := get(t, service.handleExport, "/api/export?format=yaml")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/yaml" {
		t.Errorf("Unexpected content type %s", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "o:\n") {
		t.Errorf("Unexpected YAML %q", w.Body.String())
	}

	if w := get(t, service.handleExport, "/api/export?format=xml"); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestMissingSave(t *testing.T) {
	service := NewService(bus.NewRegistry(), store.New(store.Options{}), filepath.Join(t.TempDir(), "none.sol"))
	if w := get(t, service.handleDocument, "/api/document"); w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	service, _ := newTestService(t)
	w := httptest.NewRecorder()
	service.handleDocument(w, httptest.NewRequest("POST", "/api/document", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}
