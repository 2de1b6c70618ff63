package system

import (
	"github.com/chewxy/math32"
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
)

// FloatSystem drives float-mode objects directly from elapsed time.
type FloatSystem struct {
	clock *Clock
}

func NewFloatSystem(clock *Clock) *FloatSystem {
	return &FloatSystem{clock: clock}
}

func (s *FloatSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	elapsed := s.clock.Elapsed()

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.FloatMotionComponent.Kind(), component.ActiveTagComponent.Kind(), func(e ecs.Entity, t *component.Transform, f *component.FloatMotion, _ *component.ActiveTag) {
		freq := f.Frequency
		if freq == 0 {
			freq = 1
		}
		phase := elapsed*freq + f.Phase
		t.Position.Y = f.BaseY + math32.Sin(phase)*f.Amplitude
		t.Rotation.X = math32.Cos(phase) * f.Tilt
		t.Rotation.Y = elapsed * f.Turn
	})
}
