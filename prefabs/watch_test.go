package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSceneChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "shapes.yaml")
	if err := os.WriteFile(target, []byte("items: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}

func TestSceneName(t *testing.T) {
	cases := []struct {
		path string
		want string
		ok   bool
	}{
		{filepath.Join("prefabs", "scenes", "shapes.yaml"), "shapes", true},
		{filepath.Join("prefabs", "pages.yaml"), "", false},
		{filepath.Join("prefabs", "scenes", "notes.txt"), "", false},
	}
	for _, c := range cases {
		got, ok := SceneName(c.path)
		if got != c.want || ok != c.ok {
			t.Fatalf("%s: expected (%q, %v), got (%q, %v)", c.path, c.want, c.ok, got, ok)
		}
	}
}

func TestWatcherCloseEndsEvents(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	_ = w.Close()

	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatal("expected Events to be closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Events was not closed")
	}
}
