package router

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/objectfield/prefabs"
)

var ErrUnknownRoute = errors.New("router: unknown route")

type Page struct {
	Route string
	Title string
	Body  []string
	Links []string
}

// Listener is told about every navigation. found is false when the path
// has no page and the not-found page is shown instead.
type Listener func(path string, page Page, found bool)

// Router maps paths to pages and keeps a back stack. It is driven from the
// frame thread only.
type Router struct {
	pages     map[string]Page
	order     []string
	history   []string
	listeners []Listener
}

func New(pages []Page) *Router {
	r := &Router{pages: make(map[string]Page, len(pages))}
	for _, p := range pages {
		route := Normalize(p.Route)
		if _, dup := r.pages[route]; dup {
			log.Printf("router: duplicate page for %s, keeping the first", route)
			continue
		}
		p.Route = route
		r.pages[route] = p
		r.order = append(r.order, route)
	}
	return r
}

// FromSpecs builds a router from the bundled page definitions.
func FromSpecs(specs []prefabs.PageSpec) *Router {
	pages := make([]Page, 0, len(specs))
	for _, s := range specs {
		pages = append(pages, Page{Route: s.Route, Title: s.Title, Body: s.Body, Links: s.Links})
	}
	return New(pages)
}

// Normalize cleans a path: leading slash, no trailing slash, no query or
// fragment.
func Normalize(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

func (r *Router) Lookup(path string) (Page, error) {
	route := Normalize(path)
	p, ok := r.pages[route]
	if !ok {
		return Page{}, fmt.Errorf("%w: %s", ErrUnknownRoute, route)
	}
	return p, nil
}

// Navigate records path and notifies listeners. An empty path is ignored.
func (r *Router) Navigate(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	route := Normalize(path)
	r.history = append(r.history, route)
	r.notify(route)
}

// Back pops the current page. It returns false when there is nothing to go
// back to.
func (r *Router) Back() bool {
	if len(r.history) == 0 {
		return false
	}
	r.history = r.history[:len(r.history)-1]
	r.notify(r.Current())
	return true
}

// Current is the path being shown, "" before the first navigation.
func (r *Router) Current() string {
	if len(r.history) == 0 {
		return ""
	}
	return r.history[len(r.history)-1]
}

// Page resolves the current path, falling back to the not-found page.
func (r *Router) Page() (Page, bool) {
	current := r.Current()
	if current == "" {
		return Page{}, false
	}
	p, err := r.Lookup(current)
	if err != nil {
		return NotFound(current), false
	}
	return p, true
}

func (r *Router) History() []string {
	return append([]string(nil), r.history...)
}

func (r *Router) Routes() []string {
	return append([]string(nil), r.order...)
}

func (r *Router) OnChange(l Listener) {
	if l != nil {
		r.listeners = append(r.listeners, l)
	}
}

func (r *Router) notify(route string) {
	page, found := Page{}, false
	if route != "" {
		var err error
		page, err = r.Lookup(route)
		found = err == nil
		if !found {
			page = NotFound(route)
		}
	}
	for _, l := range r.listeners {
		l(route, page, found)
	}
}

func NotFound(path string) Page {
	return Page{
		Route: path,
		Title: "Not found",
		Body:  []string{fmt.Sprintf("Nothing lives at %s yet.", path)},
	}
}
