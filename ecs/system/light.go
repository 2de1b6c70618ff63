package system

import (
	"github.com/chewxy/math32"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
)

// LightSink receives the current scene lights once per frame. The slice is
// only valid for the duration of the call.
type LightSink interface {
	SetLights(lights []component.Light)
}

// LightSystem moves orbiting lights and hands every light to the engine.
type LightSystem struct {
	clock *Clock
	sink  LightSink
	buf   []component.Light
}

func NewLightSystem(clock *Clock, sink LightSink) *LightSystem {
	return &LightSystem{clock: clock, sink: sink}
}

func (s *LightSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.sink == nil {
		return
	}
	elapsed := s.clock.Elapsed()

	s.buf = s.buf[:0]
	ecs.ForEach(w, component.LightComponent.Kind(), func(_ ecs.Entity, l *component.Light) {
		lit := *l
		lit.Position = OrbitPosition(*l, elapsed)
		s.buf = append(s.buf, lit)
	})
	s.sink.SetLights(s.buf)
}

// OrbitPosition is where a light sits after elapsed seconds.
func OrbitPosition(l component.Light, elapsed float32) common.Vec3 {
	if !l.Orbit.Moving() {
		return l.Position
	}
	angle := elapsed*l.Orbit.Speed + l.Orbit.Phase
	return l.Position.Add(common.V3(
		math32.Cos(angle)*l.Orbit.RadiusX,
		0,
		math32.Sin(angle)*l.Orbit.RadiusZ,
	))
}
