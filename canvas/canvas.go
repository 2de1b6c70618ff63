package canvas

import (
	"errors"
	"image/color"
	"log"
	"math/rand"

	"github.com/jakecoffman/cp/v2"
)

var ErrEmptyCanvas = errors.New("canvas: width and height must be positive")

type Kind int

const (
	KindRect Kind = iota
	KindEllipse
)

func (k Kind) String() string {
	if k == KindEllipse {
		return "ellipse"
	}
	return "rect"
}

// Shape is one clickable object on the canvas. X and Y are the top-left
// corner in pixels.
type Shape struct {
	Name  string
	Route string
	X, Y  float64
	W, H  float64
	Kind  Kind
	Fill  color.NRGBA

	// Decoration shapes move and draw but are never hovered or clicked.
	Decoration bool

	vel     cp.Vector
	hovered bool
}

func (s *Shape) Velocity() cp.Vector { return s.vel }
func (s *Shape) Hovered() bool       { return s.hovered }

// Bounds is the shape's rectangle. B is the top edge in screen space.
func (s *Shape) Bounds() cp.BB {
	return cp.NewBB(s.X, s.Y, s.X+s.W, s.Y+s.H)
}

// Contains is a half-open test on [x, x+w) × [y, y+h).
func (s *Shape) Contains(p cp.Vector) bool {
	bb := s.Bounds()
	return p.X >= bb.L && p.X < bb.R && p.Y >= bb.B && p.Y < bb.T
}

type Navigator interface {
	Navigate(path string)
}

type Config struct {
	Width    int
	Height   int
	MaxSpeed float64
	Seed     int64
}

func DefaultConfig() Config {
	return Config{Width: 800, Height: 600, MaxSpeed: 2}
}

// Canvas moves shapes around a fixed-size surface and resolves pointer
// input against them.
type Canvas struct {
	cfg     Config
	shapes  []*Shape
	nav     Navigator
	hovered *Shape
}

func New(cfg Config, shapes []Shape, nav Navigator) (*Canvas, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrEmptyCanvas
	}
	if cfg.MaxSpeed <= 0 {
		cfg.MaxSpeed = DefaultConfig().MaxSpeed
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	c := &Canvas{cfg: cfg, nav: nav}
	for i := range shapes {
		s := shapes[i]
		s.vel = cp.Vector{
			X: (rng.Float64()*2 - 1) * cfg.MaxSpeed,
			Y: (rng.Float64()*2 - 1) * cfg.MaxSpeed,
		}
		if s.Fill == (color.NRGBA{}) {
			s.Fill = fillFor(i)
		}
		s.hovered = false
		c.shapes = append(c.shapes, &s)
	}
	log.Printf("canvas: %dx%d with %d shapes", cfg.Width, cfg.Height, len(c.shapes))
	return c, nil
}

func fillFor(i int) color.NRGBA {
	r := 100 + 30*i
	if r > 255 {
		r = 255
	}
	return color.NRGBA{R: uint8(r), G: 150, B: 200, A: 255}
}

func (c *Canvas) Size() (int, int) { return c.cfg.Width, c.cfg.Height }
func (c *Canvas) Shapes() []*Shape { return c.shapes }

// Update advances every shape one frame and bounces it off the edges.
func (c *Canvas) Update() {
	w, h := float64(c.cfg.Width), float64(c.cfg.Height)
	for _, s := range c.shapes {
		s.X += s.vel.X
		s.Y += s.vel.Y
		s.vel.X = reflect(s.X, s.W, w, s.vel.X)
		s.vel.Y = reflect(s.Y, s.H, h, s.vel.Y)
	}
}

// reflect points v back inside [0, limit] when the span [pos, pos+size]
// has left it.
func reflect(pos, size, limit, v float64) float64 {
	switch {
	case pos < 0 && v < 0:
		return -v
	case pos+size > limit && v > 0:
		return -v
	}
	return v
}

// ShapeAt returns the first interactive shape in creation order under
// (x, y). Decorations are skipped, so a shape beneath one can still be hit.
func (c *Canvas) ShapeAt(x, y float64) *Shape {
	p := cp.Vector{X: x, Y: y}
	for _, s := range c.shapes {
		if !s.Decoration && s.Contains(p) {
			return s
		}
	}
	return nil
}

// PointerMove updates hover. The previous shape is cleared before the new
// one is set, so at most one shape is hovered.
func (c *Canvas) PointerMove(x, y float64) *Shape {
	next := c.ShapeAt(x, y)
	if next == c.hovered {
		return next
	}
	if c.hovered != nil {
		c.hovered.hovered = false
	}
	c.hovered = next
	if next != nil {
		next.hovered = true
	}
	return next
}

func (c *Canvas) Hovered() *Shape { return c.hovered }

// Click navigates to the route of the shape under (x, y), at most once.
func (c *Canvas) Click(x, y float64) string {
	route := c.RouteAt(x, y)
	if route == "" || c.nav == nil {
		return ""
	}
	log.Printf("canvas: navigate %s", route)
	c.nav.Navigate(route)
	return route
}

func (c *Canvas) RouteAt(x, y float64) string {
	if s := c.ShapeAt(x, y); s != nil {
		return s.Route
	}
	return ""
}

// Reset clears hover, used when the canvas is hidden behind a page.
func (c *Canvas) Reset() {
	if c.hovered != nil {
		c.hovered.hovered = false
		c.hovered = nil
	}
}
