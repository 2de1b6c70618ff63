package router

import (
	"errors"
	"testing"

	"github.com/milk9111/objectfield/prefabs"
)

func testPages() []Page {
	return []Page{
		{Route: "/", Title: "Home"},
		{Route: "/about", Title: "About"},
		{Route: "music/", Title: "Music"},
		{Route: "/about", Title: "Duplicate"},
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "/"},
		{"/", "/"},
		{"about", "/about"},
		{"/about/", "/about"},
		{" /music?x=1 ", "/music"},
		{"/blog#top", "/blog"},
		{"///", "/"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestLookup(t *testing.T) {
	r := New(testPages())
	if p, err := r.Lookup("/music"); err != nil || p.Title != "Music" {
		t.Fatalf("expected Music, got %+v (%v)", p, err)
	}
	if p, _ := r.Lookup("/about"); p.Title != "About" {
		t.Fatalf("duplicates must keep the first page, got %q", p.Title)
	}
	if _, err := r.Lookup("/nope"); !errors.Is(err, ErrUnknownRoute) {
		t.Fatalf("expected ErrUnknownRoute, got %v", err)
	}
	if got := len(r.Routes()); got != 3 {
		t.Fatalf("expected 3 routes, got %d", got)
	}
}

func TestNavigateAndBack(t *testing.T) {
	r := New(testPages())

	type call struct {
		path  string
		title string
		found bool
	}
	var calls []call
	r.OnChange(func(path string, page Page, found bool) {
		calls = append(calls, call{path, page.Title, found})
	})

	r.Navigate("")
	if len(calls) != 0 || r.Current() != "" {
		t.Fatal("empty navigation must be ignored")
	}

	r.Navigate("/about")
	r.Navigate("/missing")
	if r.Current() != "/missing" {
		t.Fatalf("expected /missing, got %q", r.Current())
	}
	if p, found := r.Page(); found || p.Title != "Not found" {
		t.Fatalf("expected not-found page, got %+v", p)
	}

	if !r.Back() || r.Current() != "/about" {
		t.Fatalf("expected back to /about, got %q", r.Current())
	}
	if !r.Back() || r.Current() != "" {
		t.Fatalf("expected empty history, got %q", r.Current())
	}
	if r.Back() {
		t.Fatal("back on empty history must report false")
	}

	want := []call{
		{"/about", "About", true},
		{"/missing", "Not found", false},
		{"/about", "About", true},
		{"", "", false},
	}
	if len(calls) != len(want) {
		t.Fatalf("expected %d notifications, got %v", len(want), calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("notification %d: expected %+v, got %+v", i, want[i], calls[i])
		}
	}
}

func TestFromBundledPages(t *testing.T) {
	specs, err := prefabs.LoadPages()
	if err != nil {
		t.Fatal(err)
	}
	r := FromSpecs(specs)
	for _, route := range []string{"/about", "/contact", "/aiprojects", "/blender"} {
		if _, err := r.Lookup(route); err != nil {
			t.Fatalf("missing page %s: %v", route, err)
		}
	}

	for _, name := range prefabs.SceneNames() {
		spec, err := prefabs.LoadScene(name)
		if err != nil {
			t.Fatal(err)
		}
		for _, item := range spec.Items {
			if item.Route == "" {
				continue
			}
			if _, err := r.Lookup(item.Route); err != nil {
				t.Fatalf("scene %s links to %s which has no page", name, item.Route)
			}
		}
	}
}
