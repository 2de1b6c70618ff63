package host

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClipboardLink(t *testing.T) {
	cases := []struct {
		base, route, want string
	}{
		{"", "/about", "/about"},
		{"https://example.com/", "/about", "https://example.com/about"},
		{"https://example.com", "music", "https://example.com/music"},
		{"https://example.com", "https://github.com/x", "https://github.com/x"},
	}
	for _, c := range cases {
		if got := NewClipboard(c.base).Link(c.route); got != c.want {
			t.Fatalf("Link(%q, %q): expected %q, got %q", c.base, c.route, c.want, got)
		}
	}
}

func TestClipboardCopy(t *testing.T) {
	var copied []string
	c := NewClipboard("https://example.com")
	c.write = func(text string) { copied = append(copied, text) }

	if err := c.Copy(""); err != nil {
		t.Fatal(err)
	}
	if err := c.Copy("/blog"); err != nil {
		t.Fatal(err)
	}
	if len(copied) != 1 || copied[0] != "https://example.com/blog" {
		t.Fatalf("unexpected copies %v", copied)
	}
}

func TestReloaderWithoutDirs(t *testing.T) {
	r, err := NewReloader(t.TempDir(), "shapes")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if r.Poll() {
		t.Fatal("reloader without directories must never fire")
	}
}

func TestReloaderAffects(t *testing.T) {
	r := &Reloader{scene: "shapes"}
	cases := []struct {
		path string
		want bool
	}{
		{filepath.Join("prefabs", "scenes", "shapes.yaml"), true},
		{filepath.Join("prefabs", "scenes", "cubes.yaml"), false},
		{filepath.Join("prefabs", "scripts", "spiral.tengo"), true},
		{filepath.Join("prefabs", "pages.yaml"), false},
	}
	for _, c := range cases {
		if got := r.affects(c.path); got != c.want {
			t.Fatalf("affects(%s): expected %v, got %v", c.path, c.want, got)
		}
	}
}

func TestReloaderPollsSceneWrites(t *testing.T) {
	root := t.TempDir()
	scenes := filepath.Join(root, "scenes")
	if err := os.Mkdir(scenes, 0o755); err != nil {
		t.Fatal(err)
	}
	r, err := NewReloader(root, "shapes")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err := os.WriteFile(filepath.Join(scenes, "shapes.yaml"), []byte("items: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for !r.Poll() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for reload")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
