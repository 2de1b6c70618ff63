package system

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
)

func TestFloatSystemBypassesVelocity(t *testing.T) {
	clock := NewClock(ClockFixed, 1)
	w := ecs.NewWorld()
	e := w.CreateEntity()
	tr := &component.Transform{Position: common.V3(3, 1, 0), Scale: 1}
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), tr)
	_ = ecs.Add(w, e, component.FloatMotionComponent.Kind(), &component.FloatMotion{BaseY: 1, Amplitude: 0.5, Frequency: 2, Tilt: 0.1, Turn: 0.3})
	_ = ecs.Add(w, e, component.ActiveTagComponent.Kind(), &component.ActiveTag{})

	float := NewFloatSystem(clock)
	motion := NewMotionSystem(clock, Bounds{HalfExtent: 10})
	for i := 0; i < 30; i++ {
		clock.Tick(time.Time{})
		float.Update(w)
		motion.Update(w)
	}

	elapsed := clock.Elapsed()
	wantY := 1 + math32.Sin(elapsed*2)*0.5
	if math32.Abs(tr.Position.Y-wantY) > 1e-5 {
		t.Fatalf("expected y=%v, got %v", wantY, tr.Position.Y)
	}
	if tr.Position.X != 3 {
		t.Fatalf("x must not change for float objects, got %v", tr.Position.X)
	}
	if math32.Abs(tr.Rotation.Y-elapsed*0.3) > 1e-5 {
		t.Fatalf("expected rotation.y driven by time, got %v", tr.Rotation.Y)
	}
	if tr.Position.Y < 0.5-1e-5 || tr.Position.Y > 1.5+1e-5 {
		t.Fatalf("float amplitude exceeded: %v", tr.Position.Y)
	}
}

func TestClockModes(t *testing.T) {
	start := time.Unix(1000, 0)

	fixed := NewClock(ClockFixed, 0.5)
	fixed.Tick(start)
	fixed.Tick(start.Add(time.Second))
	if fixed.Dt() != 0.5 {
		t.Fatalf("fixed clock dt should equal DtScale, got %v", fixed.Dt())
	}
	if fixed.Frame() != 2 {
		t.Fatalf("expected 2 frames, got %d", fixed.Frame())
	}

	wall := NewClock(ClockWallclock, 1)
	wall.Tick(start)
	wall.Tick(start.Add(time.Second / 60))
	if math32.Abs(wall.Dt()-1) > 1e-3 {
		t.Fatalf("one reference frame of real time should give dt≈1, got %v", wall.Dt())
	}
	wall.Tick(start.Add(10 * time.Second))
	if wall.Dt() != maxFrameSteps {
		t.Fatalf("expected stall to be capped at %d frames, got %v", maxFrameSteps, wall.Dt())
	}

	var nilClock *Clock
	nilClock.Tick(start)
	if nilClock.Dt() != 0 || nilClock.Elapsed() != 0 {
		t.Fatalf("nil clock should report zero")
	}
}
