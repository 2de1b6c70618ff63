package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/objectfield/canvas"
	"github.com/milk9111/objectfield/host"
	"github.com/milk9111/objectfield/prefabs"
	"github.com/milk9111/objectfield/router"
	"github.com/milk9111/objectfield/ui"
)

type Game struct {
	scene string
	debug bool

	canvas   *canvas.Canvas
	renderer *canvas.Renderer
	router   *router.Router
	clip     *host.Clipboard
	reloader *host.Reloader

	page    *ebitenui.UI
	pointer bool
	frames  int
}

func NewGame(scene, baseURL string, debug bool) (*Game, error) {
	pages, err := prefabs.LoadPages()
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}
	g := &Game{
		scene:    scene,
		debug:    debug,
		renderer: canvas.NewRenderer(ui.Face()),
		router:   router.FromSpecs(pages),
		clip:     host.NewClipboard(baseURL),
	}
	g.router.OnChange(g.onNavigate)
	if err := g.load(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) load() error {
	spec, err := prefabs.LoadScene(g.scene)
	if err != nil {
		return err
	}
	cfg, shapes, err := canvas.FromScene(spec)
	if err != nil {
		return err
	}
	c, err := canvas.New(cfg, shapes, g.router)
	if err != nil {
		return err
	}
	g.canvas = c
	return nil
}

func (g *Game) Watch() {
	r, err := host.NewReloader(prefabs.Dir, g.scene)
	if err != nil {
		log.Printf("field2d: watch: %v", err)
		return
	}
	g.reloader = r
}

func (g *Game) Close() {
	if err := g.reloader.Close(); err != nil {
		log.Printf("field2d: close watcher: %v", err)
	}
}

func (g *Game) onNavigate(path string, page router.Page, _ bool) {
	if path == "" {
		g.page = nil
		return
	}
	g.canvas.Reset()
	g.setPointer(false)
	g.page = ui.NewPageUI(page, ui.PageActions{
		Back:     func() { g.router.Back() },
		Navigate: g.router.Navigate,
		CopyLink: func(route string) { _ = g.clip.Copy(route) },
	})
}

func (g *Game) setPointer(pointer bool) {
	if g.pointer == pointer {
		return
	}
	g.pointer = pointer
	if pointer {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}

func (g *Game) Update() error {
	g.frames++

	if g.reloader.Poll() {
		if err := g.load(); err != nil {
			log.Printf("field2d: reload %s: %v", g.scene, err)
		}
	}

	if g.page != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.router.Back()
			return nil
		}
		g.page.Update()
		return nil
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	g.setPointer(g.canvas.PointerMove(fx, fy) != nil)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.canvas.Click(fx, fy)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		_ = g.clip.Copy(g.canvas.RouteAt(fx, fy))
	}
	g.canvas.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.canvas)
	if g.page != nil {
		g.page.Draw(screen)
	}
	if g.debug {
		hovered := "-"
		if s := g.canvas.Hovered(); s != nil {
			hovered = s.Name
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("scene %s  fps %.1f  frame %d  hovered %s\nhistory %s",
			g.scene, ebiten.ActualFPS(), g.frames, hovered, strings.Join(g.router.History(), " > ")))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Size()
}
