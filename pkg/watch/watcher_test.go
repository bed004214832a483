package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"colloquy-hq/colloquy/pkg/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// collectingHandler records handler invocations.
type collectingHandler struct {
	mu    sync.Mutex
	paths []string
}

func (c *collectingHandler) handle(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

func (c *collectingHandler) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func (c *collectingHandler) waitFor(t *testing.T, n int, timeout time.Duration) []string {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if paths := c.snapshot(); len(paths) >= n {
			return paths
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d handler calls, got %v", n, c.snapshot())
	return nil
}

func newTestWatcher(t *testing.T, dir string, handler Handler) *Watcher {
	t.Helper()
	cfg := config.WatchConfig{
		Path:             dir,
		DebounceInterval: 50 * time.Millisecond,
		Extensions:       []string{".json"},
	}
	w, err := New(cfg, handler, testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestWatcher_DetectsNewFile(t *testing.T) {
	dir := t.TempDir()
	collector := &collectingHandler{}
	w := newTestWatcher(t, dir, collector.handle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	path := filepath.Join(dir, "debate.json")
	if err := os.WriteFile(path, []byte(`{"conversation": []}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	paths := collector.waitFor(t, 1, 2*time.Second)
	if paths[0] != path {
		t.Errorf("expected %q, got %q", path, paths[0])
	}
}

func TestWatcher_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	collector := &collectingHandler{}
	w := newTestWatcher(t, dir, collector.handle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "debate.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	paths := collector.waitFor(t, 1, 2*time.Second)
	for _, p := range paths {
		if filepath.Ext(p) != ".json" {
			t.Errorf("handler called for filtered file %q", p)
		}
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	collector := &collectingHandler{}
	w := newTestWatcher(t, dir, collector.handle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	path := filepath.Join(dir, "debate.json")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := f.WriteString("chunk\n"); err != nil {
			t.Fatalf("WriteString: %v", err)
		}
		f.Sync()
		time.Sleep(5 * time.Millisecond)
	}
	f.Close()

	collector.waitFor(t, 1, 2*time.Second)

	// Give any spurious extra callbacks time to fire.
	time.Sleep(200 * time.Millisecond)
	if paths := collector.snapshot(); len(paths) != 1 {
		t.Errorf("expected 1 debounced call, got %d: %v", len(paths), paths)
	}
}

func TestWatcher_InvalidSetup(t *testing.T) {
	if _, err := New(config.WatchConfig{Path: ""}, func(string) {}, testLogger()); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := New(config.WatchConfig{Path: t.TempDir()}, nil, testLogger()); err == nil {
		t.Error("expected error for nil handler")
	}
	if _, err := New(config.WatchConfig{Path: "/nonexistent/dir"}, func(string) {}, testLogger()); err == nil {
		t.Error("expected error for missing directory")
	}
}
