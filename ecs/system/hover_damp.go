package system

import (
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
)

const (
	DefaultHoverDecay    = 0.95
	DefaultRestoreRate   = 0.05
	DefaultHighlightEase = 1.0
)

// HoverDampSystem slows the hovered object and eases every other object back
// to its original velocity.
type HoverDampSystem struct {
	decay   float32
	restore float32
}

func NewHoverDampSystem(decay, restore float32) *HoverDampSystem {
	if decay <= 0 || decay > 1 {
		decay = DefaultHoverDecay
	}
	if restore <= 0 || restore > 1 {
		restore = DefaultRestoreRate
	}
	return &HoverDampSystem{decay: decay, restore: restore}
}

func (s *HoverDampSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.VelocityComponent.Kind(), component.HoverableComponent.Kind(), component.ActiveTagComponent.Kind(), func(e ecs.Entity, v *component.Velocity, h *component.Hoverable, _ *component.ActiveTag) {
		if h.Hovered {
			if h.Motion == component.HoverMotionDamp {
				v.Current = v.Current.Scale(s.decay)
			}
			return
		}
		v.Current = v.Current.Lerp(v.Original, s.restore)
	})
}
