package themes

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsThemeEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "hearts.yaml")
	if err := os.WriteFile(path, []byte("name: hearts\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "hearts.yaml" {
			t.Fatalf("event for %q, want hearts.yaml", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for theme edit")
	}
}

func TestWatcherCloseShutsDownChannels(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("expected closed Events channel")
		}
	case <-time.After(time.Second):
		t.Fatalf("Events channel still open after Close")
	}
}
