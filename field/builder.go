package field

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/milk9111/objectfield/assets"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
)

const fallbackShape = component.ShapeBox

func (f *Field) build(ctx context.Context) error {
	positions, err := placements(f.cfg.Layout, len(f.items), f.cfg.Bounds, f.rng)
	if err != nil {
		log.Printf("field[%s]: %v, using circle layout", f.ID(), err)
	}

	for i := range f.cfg.Lights {
		l := f.cfg.Lights[i]
		_ = ecs.Add(f.world, f.world.CreateEntity(), component.LightComponent.Kind(), &l)
	}

	fontAsync := f.cfg.FontURL != "" && f.deps.Assets != nil
	if !fontAsync {
		f.face = assets.DefaultFace(f.cfg.FontSize)
	}

	for i, item := range f.items {
		e := f.spawn(item, positions[i])
		f.entities = append(f.entities, e)

		p := &pendingAssets{font: fontAsync && item.Label != ""}
		if item.ModelURL != "" {
			if f.deps.Assets != nil {
				p.model = true
				p.modelURL = item.ModelURL
				f.loadModel(ctx, e, item.ModelURL)
			} else {
				f.fallbackModel(e, item.ModelURL, fmt.Errorf("no asset loader"))
			}
		}
		if p.waiting() {
			f.pending[e] = p
			continue
		}
		if err := f.materialize(e); err != nil {
			return err
		}
	}

	if fontAsync {
		f.loadFont(ctx)
	}
	return nil
}

// spawn creates the entity and its components. Engine resources are made
// later by materialize.
func (f *Field) spawn(item Item, pos common.Vec3) ecs.Entity {
	w := f.world
	e := w.CreateEntity()

	style := mergeStyle(f.cfg.Style, item.Style)
	if style.Color == (color.NRGBA{}) {
		style.Color = hsl(f.rng.Float32()*360, 1, 0.5)
	}
	if style.Emissive == (color.NRGBA{}) {
		style.Emissive = hsl(f.rng.Float32()*360, 1, 0.5)
	}
	if item.ModelURL != "" {
		style.Shape = component.ShapeModel
	}
	if item.Position != nil {
		pos = *item.Position
	}

	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1})
	_ = ecs.Add(w, e, component.StyleComponent.Kind(), &style)
	_ = ecs.Add(w, e, component.LabelComponent.Kind(), &component.Label{Text: item.Label})
	_ = ecs.Add(w, e, component.RenderComponent.Kind(), &component.Render{})

	if item.Float != nil {
		fm := *item.Float
		fm.BaseY = pos.Y
		_ = ecs.Add(w, e, component.FloatMotionComponent.Kind(), &fm)
	} else {
		s := f.cfg.Speed
		vel := common.V3(uniform(f.rng, -s, s), uniform(f.rng, -s, s), uniform(f.rng, -s, s))
		_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Current: vel, Original: vel})
		if f.cfg.Spin > 0 {
			lo := float32(0)
			if f.cfg.SpinSymmetric {
				lo = -f.cfg.Spin
			}
			rate := common.V3(uniform(f.rng, lo, f.cfg.Spin), uniform(f.rng, lo, f.cfg.Spin), uniform(f.rng, lo, f.cfg.Spin))
			_ = ecs.Add(w, e, component.SpinComponent.Kind(), &component.Spin{Rate: rate})
		}
	}

	if !item.Decoration {
		_ = ecs.Add(w, e, component.HoverableComponent.Kind(), &component.Hoverable{
			Effect:        f.cfg.HoverEffect,
			Motion:        f.cfg.HoverMotion,
			BaseEmissive:  f.cfg.BaseEmissive,
			HoverEmissive: f.cfg.HoverEmissive,
			BaseScale:     1,
			HoverScale:    f.cfg.HoverScale,
		})
		_ = ecs.Add(w, e, component.InteractiveTagComponent.Kind(), &component.InteractiveTag{})
		f.routes[e] = item.Route
	}
	return e
}

// materialize creates the body and label for an entity whose assets are
// ready and marks it active.
func (f *Field) materialize(e ecs.Entity) error {
	if err := f.createBody(e); err != nil {
		return err
	}
	if err := f.createLabel(e); err != nil {
		return err
	}
	_ = ecs.Add(f.world, e, component.ActiveTagComponent.Kind(), &component.ActiveTag{})
	f.world.Events().Push(ecs.Event{Type: ecs.EventActivated, Data: e})
	return nil
}

func (f *Field) createBody(e ecs.Entity) error {
	engine := f.deps.Engine
	style, _ := ecs.Get(f.world, e, component.StyleComponent.Kind())
	render, _ := ecs.Get(f.world, e, component.RenderComponent.Kind())
	transform, _ := ecs.Get(f.world, e, component.TransformComponent.Kind())

	h, err := engine.NewMesh(*style)
	if err != nil && style.Shape == component.ShapeModel {
		f.fallbackModel(e, style.ModelPath, err)
		h, err = engine.NewMesh(*style)
	}
	if err != nil {
		return fmt.Errorf("field: create mesh for %q: %w", f.Label(e), err)
	}
	f.track(h, e)
	render.Body = h
	engine.SetTransform(h, *transform)
	if hover, ok := ecs.Get(f.world, e, component.HoverableComponent.Kind()); ok {
		engine.SetEmissive(h, hover.BaseEmissive)
	}
	return nil
}

func (f *Field) createLabel(e ecs.Entity) error {
	text := f.Label(e)
	if text == "" {
		return nil
	}
	style, _ := ecs.Get(f.world, e, component.StyleComponent.Kind())
	render, _ := ecs.Get(f.world, e, component.RenderComponent.Kind())

	img := assets.RenderLabel(text, f.face, f.cfg.LabelInk.options(f.cfg.LabelSize))
	w, h := labelExtent(*style)
	lh, err := f.deps.Engine.NewLabel(render.Body, img, w*f.cfg.LabelScale, h*f.cfg.LabelScale)
	if err != nil {
		return fmt.Errorf("field: create label %q: %w", text, err)
	}
	f.track(lh, e)
	render.Label = lh
	return nil
}

// labelExtent sizes the label plane to the object: planes use their own
// width and height, everything else a square of the object size.
func labelExtent(s component.Style) (float32, float32) {
	if s.Width > 0 && s.Height > 0 {
		return s.Width, s.Height
	}
	return s.Size, s.Size
}

func (f *Field) fallbackModel(e ecs.Entity, url string, err error) {
	log.Printf("field[%s]: model %s: %v, using default geometry", f.ID(), url, err)
	style, ok := ecs.Get(f.world, e, component.StyleComponent.Kind())
	if !ok {
		return
	}
	style.Shape = fallbackShape
	style.ModelPath = ""
}

func (f *Field) track(h common.Handle, e ecs.Entity) {
	f.handles = append(f.handles, h)
	f.owners[h] = e
}
