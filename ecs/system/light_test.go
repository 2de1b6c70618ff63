package system

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
)

type recordingLights struct {
	calls  int
	lights []component.Light
}

func (r *recordingLights) SetLights(lights []component.Light) {
	r.calls++
	r.lights = append(r.lights[:0], lights...)
}

func TestOrbitPosition(t *testing.T) {
	cases := []struct {
		name    string
		light   component.Light
		elapsed float32
		want    common.Vec3
	}{
		{"still", component.Light{Position: common.V3(5, 5, 5)}, 3, common.V3(5, 5, 5)},
		{"no_radius", component.Light{Position: common.V3(0, 10, 0), Orbit: component.Orbit{Speed: 1}}, 3, common.V3(0, 10, 0)},
		{"start", component.Light{Position: common.V3(0, 10, 0), Orbit: component.Orbit{RadiusX: 20, RadiusZ: 20, Speed: 0.6}}, 0, common.V3(20, 10, 0)},
		{"quarter", component.Light{Position: common.V3(0, 10, 0), Orbit: component.Orbit{RadiusX: 20, RadiusZ: 20, Speed: 1}}, math32.Pi / 2, common.V3(0, 10, 20)},
		{"mirrored", component.Light{Position: common.V3(0, 10, 0), Orbit: component.Orbit{RadiusX: -10, RadiusZ: 10, Speed: 1}}, 0, common.V3(-10, 10, 0)},
		{"phase", component.Light{Orbit: component.Orbit{RadiusX: 1, RadiusZ: 1, Speed: 1, Phase: math32.Pi}}, 0, common.V3(-1, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OrbitPosition(tc.light, tc.elapsed)
			if got.Sub(tc.want).Len() > 1e-4 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLightSystemPushesEveryLight(t *testing.T) {
	clock := NewClock(ClockFixed, 1)
	w := ecs.NewWorld()
	ambient := w.CreateEntity()
	_ = ecs.Add(w, ambient, component.LightComponent.Kind(), &component.Light{Kind: component.LightAmbient, Intensity: 0.4})
	orbiting := w.CreateEntity()
	rest := common.V3(0, 10, 0)
	_ = ecs.Add(w, orbiting, component.LightComponent.Kind(), &component.Light{
		Kind:      component.LightPoint,
		Intensity: 1,
		Position:  rest,
		Orbit:     component.Orbit{RadiusX: 20, RadiusZ: 20, Speed: 0.6},
	})

	sink := &recordingLights{}
	sys := NewLightSystem(clock, sink)
	for i := 0; i < 30; i++ {
		clock.Tick(time.Time{})
		sys.Update(w)
	}

	if sink.calls != 30 {
		t.Fatalf("expected one push per frame, got %d", sink.calls)
	}
	if len(sink.lights) != 2 {
		t.Fatalf("expected 2 lights, got %d", len(sink.lights))
	}
	want := OrbitPosition(component.Light{Position: rest, Orbit: component.Orbit{RadiusX: 20, RadiusZ: 20, Speed: 0.6}}, clock.Elapsed())
	if got := sink.lights[1].Position; got.Sub(want).Len() > 1e-4 {
		t.Fatalf("expected orbit position %v, got %v", want, got)
	}
	if l, _ := ecs.Get(w, orbiting, component.LightComponent.Kind()); l.Position != rest {
		t.Fatalf("rest position must not move, got %v", l.Position)
	}
}

func TestLightSystemWithoutSink(t *testing.T) {
	w := ecs.NewWorld()
	_ = ecs.Add(w, w.CreateEntity(), component.LightComponent.Kind(), &component.Light{Kind: component.LightPoint})
	NewLightSystem(NewClock(ClockFixed, 1), nil).Update(w)
}
