package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/milk9111/objectfield/assets"
	"github.com/milk9111/objectfield/field"
	"github.com/milk9111/objectfield/host"
	"github.com/milk9111/objectfield/prefabs"
	"github.com/milk9111/objectfield/rlengine"
	"github.com/milk9111/objectfield/router"
)

const (
	pageTitleSize = 32
	pageBodySize  = 20
	pagePadding   = 40
)

type app struct {
	scene string
	debug bool

	engine   *rlengine.Engine
	cursor   *rlengine.Cursor
	router   *router.Router
	loader   *assets.Loader
	clip     *host.Clipboard
	reloader *host.Reloader

	field *field.Field
	// showPage is set by router notifications and applied on the next frame.
	showPage bool
	dirty    bool
	reload   bool
	width    int
	height   int
}

func newApp(scene, cacheDir, baseURL string, debug bool) (*app, error) {
	pages, err := prefabs.LoadPages()
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}
	a := &app{
		scene:  scene,
		debug:  debug,
		engine: rlengine.New(),
		cursor: &rlengine.Cursor{},
		router: router.FromSpecs(pages),
		loader: assets.NewLoader(cacheDir),
		clip:   host.NewClipboard(baseURL),
	}
	a.router.OnChange(func(path string, _ router.Page, _ bool) {
		a.showPage = path != ""
		a.dirty = true
	})
	if err := a.load(); err != nil {
		return nil, err
	}
	return a, nil
}

// load builds the current scene, or rebuilds it in place on reload. A
// failed reload keeps the previous scene.
func (a *app) load() error {
	spec, err := prefabs.LoadScene(a.scene)
	if err != nil {
		return err
	}
	cfg, items, err := field.FromScene(spec)
	if err != nil {
		return err
	}

	if a.field != nil {
		err := a.field.Reload(cfg, items)
		if errors.Is(err, field.ErrNotMounted) {
			return nil
		}
		return err
	}

	f := field.New(cfg, items, field.Deps{
		Engine: a.engine,
		Router: a.router,
		Assets: a.loader,
		Cursor: a.cursor,
	})
	if err := f.Mount(); err != nil {
		return err
	}
	a.field = f
	return nil
}

func (a *app) watch() {
	r, err := host.NewReloader(prefabs.Dir, a.scene)
	if err != nil {
		log.Printf("field3d: watch: %v", err)
		return
	}
	a.reloader = r
}

func (a *app) close() {
	if a.field != nil {
		a.field.Unmount()
	}
	a.engine.Close()
	if err := a.reloader.Close(); err != nil {
		log.Printf("field3d: close watcher: %v", err)
	}
}

func (a *app) update() {
	if a.reloader.Poll() {
		a.reload = true
	}
	if a.reload && !a.showPage {
		a.reload = false
		if err := a.load(); err != nil {
			log.Printf("field3d: reload %s: %v", a.scene, err)
		}
	}

	if a.dirty {
		a.dirty = false
		if a.showPage {
			a.field.Unmount()
		} else if err := a.field.Mount(); err != nil {
			log.Printf("field3d: remount: %v", err)
		}
	}

	if a.showPage {
		a.updatePage()
		return
	}

	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	if w != a.width || h != a.height {
		a.width, a.height = w, h
		a.field.Resize(float32(w), float32(h))
	}

	mouse := rl.GetMousePosition()
	fw, fh := float32(w), float32(h)
	a.field.PointerMove(mouse.X, mouse.Y, fw, fh)
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.field.Click(mouse.X, mouse.Y, fw, fh)
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		if route := a.field.RouteAt(mouse.X, mouse.Y, fw, fh); route != "" {
			_ = a.clip.Copy(route)
		}
	}
	a.field.Update(time.Now())
}

func (a *app) updatePage() {
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressed(rl.KeyEscape) || rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.router.Back()
		return
	}
	if rl.IsKeyPressed(rl.KeyC) {
		_ = a.clip.Copy(a.router.Current())
	}
}

func (a *app) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	if a.showPage {
		a.drawPage()
	} else {
		a.field.Draw()
		if a.debug {
			a.drawDebug()
		}
	}
	rl.EndDrawing()
}

func (a *app) drawPage() {
	page, _ := a.router.Page()
	y := int32(pagePadding)
	rl.DrawText(page.Title, pagePadding, y, pageTitleSize, rl.RayWhite)
	y += pageTitleSize + pagePadding/2
	for _, line := range append(append([]string(nil), page.Body...), page.Links...) {
		rl.DrawText(line, pagePadding, y, pageBodySize, rl.LightGray)
		y += pageBodySize + 8
	}
	hint := "click or backspace to go back, c to copy link"
	rl.DrawText(hint, pagePadding, int32(rl.GetScreenHeight())-pagePadding, pageBodySize, rl.Gray)
}

func (a *app) drawDebug() {
	hovered := "-"
	if e, ok := a.field.Hovered(); ok {
		hovered = a.field.Label(e)
	}
	lines := []string{
		fmt.Sprintf("scene %s  field %s  fps %d", a.scene, a.field.ID(), rl.GetFPS()),
		fmt.Sprintf("objects %d  pending %d  hovered %s", len(a.field.Objects()), a.field.Pending(), hovered),
		"history " + strings.Join(a.router.History(), " > "),
	}
	for i, line := range lines {
		rl.DrawText(line, 10, int32(10+i*22), 20, rl.Green)
	}
}
