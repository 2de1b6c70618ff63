package system

import (
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
)

// MotionSystem integrates velocity into position for active kinematic
// objects, applies per-frame spin and reflects velocity at the bounds.
type MotionSystem struct {
	clock  *Clock
	bounds Bounds
}

func NewMotionSystem(clock *Clock, bounds Bounds) *MotionSystem {
	return &MotionSystem{clock: clock, bounds: bounds}
}

func (s *MotionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := s.clock.Dt()

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), component.ActiveTagComponent.Kind(), func(e ecs.Entity, t *component.Transform, v *component.Velocity, _ *component.ActiveTag) {
		if hover, ok := ecs.Get(w, e, component.HoverableComponent.Kind()); ok && hover.Hovered && hover.Motion == component.HoverMotionFreeze {
			return
		}

		t.Position = t.Position.Add(v.Current.Scale(dt))
		v.Current = s.bounds.Reflect(t.Position, v.Current)
		v.Original = s.bounds.Reflect(t.Position, v.Original)

		if spin, ok := ecs.Get(w, e, component.SpinComponent.Kind()); ok {
			t.Rotation = t.Rotation.Add(spin.Rate)
		}
	})
}
