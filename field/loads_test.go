package field

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
)

func waitForAssets(t *testing.T, f *Field) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for f.Pending() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("timed out with %d objects pending", f.Pending())
		}
		f.Update(time.Time{})
		time.Sleep(time.Millisecond)
	}
}

func TestPendingObjectsJoinLater(t *testing.T) {
	cfg, items := circleScene()
	cfg.FontURL = "https://fonts.example/bold.ttf"
	cfg.Speed = 0.05
	items[2].ModelURL = "https://models.example/music.glb"

	engine := newFakeEngine()
	loader := newGatedLoader()
	loader.models[items[2].ModelURL] = "/cache/music.glb"
	router := &recordingRouter{}
	f := mountField(t, cfg, items, Deps{Engine: engine, Router: router, Assets: loader})

	if f.Pending() != len(items) {
		t.Fatalf("expected every labeled object to wait for the font, got %d pending", f.Pending())
	}
	if len(engine.live) != 0 {
		t.Fatalf("pending objects must not create engine resources, got %d", len(engine.live))
	}

	music := objectLabeled(t, f, "Music")
	before, _ := f.Position(music)
	for i := 0; i < 10; i++ {
		f.Update(time.Time{})
	}
	if after, _ := f.Position(music); after != before {
		t.Fatal("pending objects must not be integrated")
	}
	x, y := screenOf(t, f, music)
	if got := f.Click(x, y, viewW, viewH); got != "" {
		t.Fatalf("pending objects must not be clickable, got %q", got)
	}

	close(loader.release)
	waitForAssets(t, f)

	if len(engine.live) != 2*len(items) {
		t.Fatalf("expected all bodies and labels after loading, got %d", len(engine.live))
	}
	style, _ := ecs.Get(f.world, music, component.StyleComponent.Kind())
	if style.Shape != component.ShapeModel || style.ModelPath != "/cache/music.glb" {
		t.Fatalf("expected loaded model, got %+v", style)
	}

	x, y = screenOf(t, f, music)
	if got := f.Click(x, y, viewW, viewH); got != "/music" {
		t.Fatalf("expected /music once active, got %q", got)
	}

	activated := 0
	for _, evt := range f.Events() {
		if evt.Type == ecs.EventActivated {
			activated++
		}
	}
	if activated != len(items) {
		t.Fatalf("expected %d activations, got %d", len(items), activated)
	}
}

func TestAssetFailuresFallBack(t *testing.T) {
	cases := []struct {
		name       string
		models     map[string]string
		failModels bool
	}{
		{"model_fetch_fails", nil, false},
		{"model_mesh_fails", map[string]string{"https://models.example/x.glb": "/cache/x.glb"}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, items := circleScene()
			cfg.FontURL = "https://fonts.example/missing.ttf"
			items[0].ModelURL = "https://models.example/x.glb"

			engine := newFakeEngine()
			engine.failModels = c.failModels
			loader := newGatedLoader()
			loader.fontErr = errors.New("fake: font not found")
			for k, v := range c.models {
				loader.models[k] = v
			}
			close(loader.release)

			f := mountField(t, cfg, items, Deps{Engine: engine, Assets: loader})
			waitForAssets(t, f)

			if len(engine.live) != 2*len(items) {
				t.Fatalf("fallbacks must still build every object, got %d handles", len(engine.live))
			}
			home := objectLabeled(t, f, "Home")
			style, _ := ecs.Get(f.world, home, component.StyleComponent.Kind())
			if style.Shape != fallbackShape {
				t.Fatalf("expected default geometry, got %q", style.Shape)
			}
			if !ecs.Has(f.world, home, component.ActiveTagComponent.Kind()) {
				t.Fatal("fallback object must become active")
			}
		})
	}
}

func TestModelWithoutLoaderUsesDefaultGeometry(t *testing.T) {
	cfg, items := circleScene()
	items[1].ModelURL = "models/gallery.glb"
	engine := newFakeEngine()
	f := mountField(t, cfg, items, Deps{Engine: engine})

	if f.Pending() != 0 {
		t.Fatalf("nothing can be pending without a loader, got %d", f.Pending())
	}
	style, _ := ecs.Get(f.world, objectLabeled(t, f, "Gallery"), component.StyleComponent.Kind())
	if style.Shape != fallbackShape {
		t.Fatalf("expected default geometry, got %q", style.Shape)
	}
}

func TestUnmountCancelsLoads(t *testing.T) {
	cfg, items := circleScene()
	cfg.FontURL = "https://fonts.example/slow.ttf"
	items[0].ModelURL = "https://models.example/slow.glb"

	engine := newFakeEngine()
	loader := newGatedLoader()
	f := New(cfg, items, Deps{Engine: engine, Assets: loader})
	if err := f.Mount(); err != nil {
		t.Fatal(err)
	}
	f.Update(time.Time{})
	f.Unmount()

	deadline := time.Now().Add(2 * time.Second)
	for loader.cancelCount() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("expected both loads cancelled, got %d", loader.cancelCount())
		}
		time.Sleep(time.Millisecond)
	}
	if len(engine.live) != 0 || engine.owned {
		t.Fatal("unmount during loading must release everything")
	}
}
