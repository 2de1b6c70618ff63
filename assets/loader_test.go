package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func TestLoaderFetchesAndCachesFonts(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/fonts/bold.ttf" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(gobold.TTF)
	}))
	defer srv.Close()

	l := &Loader{CacheDir: t.TempDir(), Client: srv.Client()}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		face, err := l.LoadFont(ctx, srv.URL+"/fonts/bold.ttf", 48)
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if face.Metrics().Height <= 0 {
			t.Fatalf("expected a usable face")
		}
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected one request thanks to the cache, got %d", got)
	}

	if _, err := l.LoadFont(ctx, srv.URL+"/missing.ttf", 48); err == nil {
		t.Fatal("expected an error for a 404")
	}
}

func TestLoaderRejectsBadFonts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader(dir)
	if _, err := l.LoadFont(context.Background(), path, 12); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoaderModelPaths(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "monkey.glb")
	if err := os.WriteFile(model, []byte("glTF"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader(t.TempDir())

	cases := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"local", model, model, false},
		{"file_scheme", "file://" + model, model, false},
		{"missing", filepath.Join(dir, "nope.glb"), "", true},
		{"empty", "", "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := l.LoadModel(context.Background(), c.url)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("expected %q, got %q (%v)", c.want, got, err)
			}
		})
	}
}

func TestLoaderHonoursCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := &Loader{CacheDir: t.TempDir(), Client: srv.Client()}
	if _, err := l.LoadModel(ctx, srv.URL+"/model.glb"); err == nil {
		t.Fatal("expected cancelled request to fail")
	}
}

func TestCacheName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://example.com/fonts/Bold.ttf", "example.com_fonts_Bold.ttf"},
		{"https://example.com/a%20b/c.glb?v=2", "example.com_a_b_c.glb_v_2"},
		{"https://", "download"},
	}
	for _, c := range cases {
		if got := cacheName(c.in); got != c.want {
			t.Fatalf("%s: expected %q, got %q", c.in, c.want, got)
		}
	}
}
