// If you are AI: This file contains integration tests that verify serve startup, health checks, and shutdown.

package itest

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"soledit/internal/core/protocol/amf0"
	"soledit/internal/core/protocol/sol"
	"soledit/internal/store"
)

// harness is one running "soledit serve" process.
type harness struct {
	port int
	save string
	cmd  *exec.Cmd
}

func (h *harness) url(path string) string {
	return fmt.Sprintf("http://127.0.0.1:%d%s", h.port, path)
}

// writeSave writes a small JY2 save with gold set to gold.
func writeSave(t *testing.T, path string, gold float64) {
	t.Helper()
	f := sol.NewFile("JY2")
	skills := amf0.NewDocument()
	skills.Set("0", amf0.Number(14))
	exp := amf0.NewDocument()
	exp.Set("14", amf0.Number(120))
	f.Body.Set("o", amf0.Object(skills))
	f.Body.Set("v", amf0.Object(exp))
	f.Body.Set("gold", amf0.Number(gold))
	if err := store.New(store.Options{}).Save(path, f); err != nil {
		t.Fatalf("Failed to write save: %v", err)
	}
}

func startHarness(t *testing.T) *harness {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	dir := t.TempDir()
	bin, err := BuildBinary(dir)
	if err != nil {
		t.Fatalf("Failed to build binary: %v", err)
	}
	port, err := FreePort()
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := WriteConfig(dir, port)
	if err != nil {
		t.Fatal(err)
	}
	save := filepath.Join(dir, "JY2.sol")
	writeSave(t, save, 50)

	ctx, cancel := context.WithCancel(context.Background())
	cmd, err := StartServer(ctx, bin, cfg, save)
	if err != nil {
		cancel()
		t.Fatal(err)
	}
	h := &harness{port: port, save: save, cmd: cmd}
	t.Cleanup(func() {
		_ = StopServer(cmd, 5*time.Second)
		cancel()
	})

	if err := WaitForHealth(port, 10*time.Second); err != nil {
		t.Fatalf("Health endpoint not available: %v", err)
	}
	return h
}

func TestServeStartupAndShutdown(t *testing.T) {
	h := startHarness(t)

	start := time.Now()
	if err := StopServer(h.cmd, 3*time.Second); err != nil {
		t.Fatalf("Server did not shut down cleanly: %v", err)
	}
	if code := h.cmd.ProcessState.ExitCode(); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("Shutdown took %v", elapsed)
	}
}
