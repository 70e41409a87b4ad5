// If you are AI: This file provides helpers for building and running the soledit binary in tests.

package itest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"
)

// BuildBinary compiles cmd/soledit into dir and returns the binary path.
func BuildBinary(dir string) (string, error) {
	bin := filepath.Join(dir, "soledit")
	cmd := exec.Command("go", "build", "-o", bin, "../../cmd/soledit")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("build soledit: %w", err)
	}
	return bin, nil
}

// FreePort returns a TCP port that was free a moment ago.
func FreePort() (int, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("find free port: %w", err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port, nil
}

// WriteConfig writes a config serving on port with a short watch debounce.
func WriteConfig(dir string, port int) (string, error) {
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`save:
  dir: %q
log:
  level: warn
  format: json
server:
  http_port: %d
watch:
  debounce: 50ms
`, dir, port)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// StartServer runs "soledit serve" for savePath as a subprocess.
func StartServer(ctx context.Context, bin, configPath, savePath string) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, bin, "--config", configPath, "--file", savePath, "serve")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start server: %w", err)
	}
	return cmd, nil
}

// StopServer sends SIGINT and waits for the process to exit.
// It kills the process when it outlives timeout. Stopping twice is a no-op.
func StopServer(cmd *exec.Cmd, timeout time.Duration) error {
	if cmd.ProcessState != nil {
		return nil
	}
	if err := cmd.Process.Signal(syscall.SIGINT); err != nil {
		return fmt.Errorf("signal server: %w", err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		<-done
		return fmt.Errorf("server did not exit within %v", timeout)
	}
}

// WaitForHealth waits for the health endpoint to become available.
// Returns an error if the endpoint is not available within the timeout.
func WaitForHealth(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://127.0.0.1:%d/healthz", port)

	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("health endpoint not available after %v", timeout)
}
