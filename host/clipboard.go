package host

import (
	"errors"
	"log"
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

var ErrNoClipboard = errors.New("host: clipboard unavailable")

// Clipboard copies page links. The system clipboard is initialised on first
// use; when that fails copying is logged and reported as ErrNoClipboard.
type Clipboard struct {
	base string

	once sync.Once
	err  error
	// write is swapped out by tests.
	write func(text string)
}

func NewClipboard(baseURL string) *Clipboard {
	return &Clipboard{base: strings.TrimRight(baseURL, "/")}
}

// Link turns a route into the text that is copied. External links and an
// empty base are returned unchanged.
func (c *Clipboard) Link(route string) string {
	if c.base == "" || strings.Contains(route, "://") {
		return route
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return c.base + route
}

func (c *Clipboard) Copy(route string) error {
	if route == "" {
		return nil
	}
	c.once.Do(func() {
		if c.write != nil {
			return
		}
		if err := clipboard.Init(); err != nil {
			c.err = err
			return
		}
		c.write = func(text string) { clipboard.Write(clipboard.FmtText, []byte(text)) }
	})
	if c.err != nil {
		log.Printf("host: copy %s: %v", route, c.err)
		return ErrNoClipboard
	}
	link := c.Link(route)
	c.write(link)
	log.Printf("host: copied %s", link)
	return nil
}
