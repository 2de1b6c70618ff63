package field

import (
	"context"
	"log"

	"github.com/milk9111/objectfield/assets"
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
	"golang.org/x/image/font"
)

// pendingAssets records which loads an entity is still waiting for.
type pendingAssets struct {
	model    bool
	font     bool
	modelURL string
}

func (p *pendingAssets) waiting() bool {
	return p.model || p.font
}

type assetResult struct {
	font   bool
	entity ecs.Entity
	face   font.Face
	path   string
	err    error
}

func (f *Field) loadFont(ctx context.Context) {
	loader, results := f.deps.Assets, f.results
	url, size := f.cfg.FontURL, f.cfg.FontSize
	go func() {
		face, err := loader.LoadFont(ctx, url, size)
		select {
		case results <- assetResult{font: true, face: face, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (f *Field) loadModel(ctx context.Context, e ecs.Entity, url string) {
	loader, results := f.deps.Assets, f.results
	go func() {
		path, err := loader.LoadModel(ctx, url)
		select {
		case results <- assetResult{entity: e, path: path, err: err}:
		case <-ctx.Done():
		}
	}()
}

// drainAssets applies finished loads without blocking and activates every
// entity that has nothing left to wait for.
func (f *Field) drainAssets() {
	if len(f.pending) == 0 {
		return
	}

	changed := false
	for done := false; !done; {
		select {
		case res := <-f.results:
			f.applyAsset(res)
			changed = true
		default:
			done = true
		}
	}
	if !changed {
		return
	}

	for _, e := range f.entities {
		p, ok := f.pending[e]
		if !ok || p.waiting() {
			continue
		}
		delete(f.pending, e)
		if err := f.materialize(e); err != nil {
			log.Printf("field[%s]: %v", f.ID(), err)
		}
	}
}

func (f *Field) applyAsset(res assetResult) {
	if res.font {
		face := res.face
		if res.err != nil || face == nil {
			log.Printf("field[%s]: font %s: %v, using default face", f.ID(), f.cfg.FontURL, res.err)
			face = assets.DefaultFace(f.cfg.FontSize)
		}
		f.face = face
		for _, p := range f.pending {
			p.font = false
		}
		return
	}

	p, ok := f.pending[res.entity]
	if !ok {
		return
	}
	p.model = false
	if res.err != nil || res.path == "" {
		f.fallbackModel(res.entity, p.modelURL, res.err)
		return
	}
	if style, ok := ecs.Get(f.world, res.entity, component.StyleComponent.Kind()); ok {
		style.Shape = component.ShapeModel
		style.ModelPath = res.path
	}
}
