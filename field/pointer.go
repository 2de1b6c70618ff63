package field

import (
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
)

// PointerMove updates the hovered object for a pointer at (x, y) in a
// viewport of width by height pixels.
func (f *Field) PointerMove(x, y, width, height float32) {
	if !f.mounted {
		return
	}
	f.setHover(f.pick(x, y, width, height))
}

// Click navigates to the route of the object under the pointer, if it has
// one, and returns that route. A click on nothing returns "".
func (f *Field) Click(x, y, width, height float32) string {
	route := f.RouteAt(x, y, width, height)
	if route == "" {
		return ""
	}
	if f.deps.Router != nil {
		f.deps.Router.Navigate(route)
	}
	f.world.Events().Push(ecs.Event{Type: ecs.EventNavigated, Data: route})
	return route
}

// RouteAt returns the route under the pointer without navigating.
func (f *Field) RouteAt(x, y, width, height float32) string {
	if !f.mounted {
		return ""
	}
	e := f.pick(x, y, width, height)
	if !e.Valid() {
		return ""
	}
	return f.routes[e]
}

// Hovered returns the hovered object, if any.
func (f *Field) Hovered() (ecs.Entity, bool) {
	return f.hovered, f.hovered.Valid()
}

// pick returns the owner of the nearest hit among active interactive
// objects, or the zero Entity.
func (f *Field) pick(x, y, width, height float32) ecs.Entity {
	if width <= 0 || height <= 0 {
		return 0
	}
	ray := f.camera.RayFromNDC(common.ToNDC(x, y, width, height))

	f.candidates = f.candidates[:0]
	ecs.ForEach3(f.world, component.RenderComponent.Kind(), component.ActiveTagComponent.Kind(), component.InteractiveTagComponent.Kind(), func(_ ecs.Entity, r *component.Render, _ *component.ActiveTag, _ *component.InteractiveTag) {
		if r.Body.Valid() {
			f.candidates = append(f.candidates, r.Body)
		}
		if r.Label.Valid() {
			f.candidates = append(f.candidates, r.Label)
		}
	})
	if len(f.candidates) == 0 {
		return 0
	}

	for _, hit := range f.deps.Engine.Intersect(ray, f.candidates) {
		e, ok := f.owners[hit.Handle]
		if !ok || !f.world.IsAlive(e) {
			continue
		}
		if ecs.Has(f.world, e, component.ActiveTagComponent.Kind()) {
			return e
		}
	}
	return 0
}

// setHover moves the hover flag to e. The previous object is put back to its
// idle look before the new one is flagged, so at most one is ever
// highlighted.
func (f *Field) setHover(e ecs.Entity) {
	if e == f.hovered {
		return
	}
	prev := f.hovered
	if prev.Valid() {
		if h, ok := ecs.Get(f.world, prev, component.HoverableComponent.Kind()); ok {
			h.Hovered = false
			h.Level = 0
			f.restoreIdle(prev, h)
		}
	}

	f.hovered = 0
	if e.Valid() {
		if h, ok := ecs.Get(f.world, e, component.HoverableComponent.Kind()); ok {
			h.Hovered = true
			f.hovered = e
		}
	}

	if f.deps.Cursor != nil {
		f.deps.Cursor.SetPointer(f.hovered.Valid())
	}
	f.world.Events().Push(ecs.Event{Type: ecs.EventHoverChanged, Data: ecs.HoverChange{From: prev, To: f.hovered}})
}

func (f *Field) restoreIdle(e ecs.Entity, h *component.Hoverable) {
	r, ok := ecs.Get(f.world, e, component.RenderComponent.Kind())
	if !ok || !r.Body.Valid() {
		return
	}
	engine := f.deps.Engine
	engine.SetEmissive(r.Body, h.BaseEmissive)
	if t, ok := ecs.Get(f.world, e, component.TransformComponent.Kind()); ok {
		engine.SetTransform(r.Body, *t)
	}
}
