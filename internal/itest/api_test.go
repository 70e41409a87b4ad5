// If you are AI: This file contains integration tests for the read-only HTTP API of a running server.

package itest

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestAPIDocumentAndSkills(t *testing.T) {
	h := startHarness(t)

	resp, err := http.Get(h.url("/api/document"))
	if err != nil {
		t.Fatalf("Failed to query /api/document: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var doc struct {
		Name string          `json:"name"`
		Body json.RawMessage `json:"body"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if doc.Name != "JY2" {
		t.Errorf("Expected name JY2, got %q", doc.Name)
	}
	if want := `{"o":{"0":14},"v":{"14":120},"gold":50}`; string(doc.Body) != want {
		t.Errorf("Expected body %s, got %s", want, doc.Body)
	}

	resp, err = http.Get(h.url("/api/skills"))
	if err != nil {
		t.Fatalf("Failed to query /api/skills: %v", err)
	}
	defer resp.Body.Close()
	var skills map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&skills); err != nil {
		t.Fatalf("Failed to decode skills: %v", err)
	}
	list, ok := skills["skills"].([]interface{})
	if !ok || len(list) != 1 {
		t.Fatalf("Expected one skill, got %v", skills["skills"])
	}
}

func TestAPIExport(t *testing.T) {
	h := startHarness(t)

	resp, err := http.Get(h.url("/api/export?format=msgpack"))
	if err != nil {
		t.Fatalf("Failed to query /api/export: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "msgpack") {
		t.Errorf("Unexpected content type %q", ct)
	}
}
