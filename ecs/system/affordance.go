package system

import (
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
)

// RenderSink receives the per-frame visual state of every active object.
type RenderSink interface {
	SetTransform(h common.Handle, t component.Transform)
	SetEmissive(h common.Handle, intensity float32)
}

// AffordanceSystem eases hover highlight levels and pushes transforms,
// scale and emissive intensity to the rendering engine.
type AffordanceSystem struct {
	sink RenderSink
	ease float32
}

func NewAffordanceSystem(sink RenderSink, ease float32) *AffordanceSystem {
	if ease <= 0 || ease > 1 {
		ease = DefaultHighlightEase
	}
	return &AffordanceSystem{sink: sink, ease: ease}
}

func (s *AffordanceSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.RenderComponent.Kind(), component.ActiveTagComponent.Kind(), func(e ecs.Entity, t *component.Transform, r *component.Render, _ *component.ActiveTag) {
		display := *t
		if display.Scale == 0 {
			display.Scale = 1
		}

		h, ok := ecs.Get(w, e, component.HoverableComponent.Kind())
		if !ok {
			if s.sink != nil {
				s.sink.SetTransform(r.Body, display)
			}
			return
		}

		target := float32(0)
		if h.Hovered {
			target = 1
		}
		h.Level = common.Lerp(h.Level, target, s.ease)

		emissive := h.BaseEmissive
		if h.Effect == component.HoverEffectEmissive {
			emissive = common.Lerp(h.BaseEmissive, h.HoverEmissive, h.Level)
		}
		if h.Effect == component.HoverEffectScale && h.BaseScale > 0 {
			display.Scale *= common.Lerp(h.BaseScale, h.HoverScale, h.Level)
		}

		if s.sink != nil {
			s.sink.SetTransform(r.Body, display)
			s.sink.SetEmissive(r.Body, emissive)
		}
	})
}
