package system

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
)

func TestHoverDamping(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnKinematic(t, w, common.Vec3{}, common.V3(0.1, 0, 0))
	hover := &component.Hoverable{Hovered: true, Motion: component.HoverMotionDamp}
	_ = ecs.Add(w, e, component.HoverableComponent.Kind(), hover)

	sys := NewHoverDampSystem(0.95, 0.05)
	sys.Update(w)

	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if math32.Abs(v.Current.X-0.095) > 1e-6 {
		t.Fatalf("expected 0.1*0.95, got %v", v.Current.X)
	}
	for i := 0; i < 200; i++ {
		sys.Update(w)
	}
	if v.Current.X > 0.001 {
		t.Fatalf("expected velocity to approach zero while hovered, got %v", v.Current.X)
	}

	hover.Hovered = false
	sys.Update(w)
	after := v.Current.X
	if after <= 0 || after >= 0.1 {
		t.Fatalf("expected partial restore after one frame, got %v", after)
	}
	for i := 0; i < 400; i++ {
		sys.Update(w)
	}
	if math32.Abs(v.Current.X-0.1) > 1e-4 {
		t.Fatalf("expected velocity restored to original, got %v", v.Current.X)
	}
	if v.Original.X != 0.1 {
		t.Fatalf("original velocity must not change, got %v", v.Original.X)
	}
}

func TestHoverFreezeKeepsVelocity(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnKinematic(t, w, common.Vec3{}, common.V3(0.1, 0, 0))
	_ = ecs.Add(w, e, component.HoverableComponent.Kind(), &component.Hoverable{Hovered: true, Motion: component.HoverMotionFreeze})

	NewHoverDampSystem(0.95, 0.05).Update(w)
	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if v.Current.X != 0.1 {
		t.Fatalf("freeze mode must leave velocity untouched, got %v", v.Current.X)
	}
}

func TestNewHoverDampSystemDefaults(t *testing.T) {
	s := NewHoverDampSystem(0, 2)
	if s.decay != DefaultHoverDecay || s.restore != DefaultRestoreRate {
		t.Fatalf("expected defaults, got decay=%v restore=%v", s.decay, s.restore)
	}
}
