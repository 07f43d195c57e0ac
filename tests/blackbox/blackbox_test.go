package blackbox

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"testing"
	"time"
)

// findFreePort picks an available TCP port on localhost.
func findFreePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func projectRootFromThisFile(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file: <root>/tests/blackbox/blackbox_test.go
	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("blackbox build skipped in -short mode")
	}
	root := projectRootFromThisFile(t)
	binPath := filepath.Join(t.TempDir(), "studio")
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/studio")
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("go build failed: %v\n%s", err, string(out))
	}
	return binPath
}

// studioCmd runs the binary in dir with no STUDIO_* settings.
func studioCmd(t *testing.T, dir, bin string, args ...string) *exec.Cmd {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "STUDIO_") {
			cmd.Env = append(cmd.Env, kv)
		}
	}
	return cmd
}

type serverProc struct {
	cmd  *exec.Cmd
	base string
}

func startServer(t *testing.T, bin string, port int, extra ...string) *serverProc {
	t.Helper()
	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	args := append([]string{"serve", "--addr", fmt.Sprintf("127.0.0.1:%d", port), "--log-format", "json"}, extra...)
	cmd := studioCmd(t, t.TempDir(), bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		t.Fatalf("start server: %v", err)
	}
	t.Cleanup(func() { _ = cmd.Process.Kill(); _, _ = cmd.Process.Wait() })

	deadline := time.Now().Add(10 * time.Second)
	for {
		resp, err := http.Get(base + "/healthz")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not become healthy in time")
		}
		time.Sleep(50 * time.Millisecond)
	}
	return &serverProc{cmd: cmd, base: base}
}

func get(t *testing.T, target string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, target, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, string(b)
}

func TestBlackbox_Flow(t *testing.T) {
	bin := buildBinary(t)
	sp := startServer(t, bin, findFreePort(t))

	resp, home := get(t, sp.base+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("home status=%d", resp.StatusCode)
	}
	for _, want := range []string{"API Connected", "Llama 3 8B (4-bit)", "Not Available"} {
		if !strings.Contains(home, want) {
			t.Fatalf("home missing %q", want)
		}
	}

	resp, err := http.PostForm(sp.base+"/training", url.Values{"num_epochs": {"5"}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(b), "Job ID: job_") {
		t.Fatalf("submit status=%d body=%s", resp.StatusCode, b)
	}

	resp, metrics := get(t, sp.base+"/metrics")
	if resp.StatusCode != http.StatusOK || !strings.Contains(metrics, "studio_http_requests_total") {
		t.Fatalf("metrics status=%d", resp.StatusCode)
	}

	resp, _ = get(t, sp.base+"/readyz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("readyz status=%d", resp.StatusCode)
	}
}

func TestBlackbox_ClientCommands(t *testing.T) {
	bin := buildBinary(t)
	sp := startServer(t, bin, findFreePort(t))

	out, err := studioCmd(t, t.TempDir(), bin, "--api-base", sp.base, "models").Output()
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	if !strings.Contains(string(out), "unsloth/gemma-7b-bnb-4bit") {
		t.Fatalf("models output: %s", out)
	}

	out, err = studioCmd(t, t.TempDir(), bin, "--api-base", sp.base, "train", "--num-epochs", "2").Output()
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if !strings.Contains(string(out), `"status": "started"`) {
		t.Fatalf("train output: %s", out)
	}

	out, err = studioCmd(t, t.TempDir(), bin, "--api-base", sp.base, "train-status").Output()
	if err != nil || !strings.Contains(string(out), `"status": "started"`) {
		t.Fatalf("train-status: err=%v out=%s", err, out)
	}

	cmd := studioCmd(t, t.TempDir(), bin, "--api-base", sp.base, "train", "--batch-size", "lots")
	if err := cmd.Run(); err == nil {
		t.Fatal("expected non-zero exit for a bad batch size")
	}
}

func TestBlackbox_DemoAPIDisabled(t *testing.T) {
	bin := buildBinary(t)
	sp := startServer(t, bin, findFreePort(t), "--demo-api=false")

	resp, body := get(t, sp.base+"/api/health")
	if resp.StatusCode != http.StatusNotFound || !strings.Contains(body, "API endpoint not found") {
		t.Fatalf("status=%d body=%s", resp.StatusCode, body)
	}
	resp, _ = get(t, sp.base+"/readyz")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d", resp.StatusCode)
	}
}

func TestBlackbox_GracefulShutdown(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("SIGINT not supported")
	}
	bin := buildBinary(t)
	sp := startServer(t, bin, findFreePort(t))

	if err := sp.cmd.Process.Signal(syscall.SIGINT); err != nil {
		t.Fatalf("signal: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- sp.cmd.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("server exited with error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server did not exit after SIGINT")
	}
}
