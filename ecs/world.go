package ecs

import "github.com/milk9111/objectfield/ecs/component"

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities ordered by slot.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Clear destroys every entity and drops all stores.
func (w *World) Clear() {
	if w == nil {
		return
	}
	w.entities.reset()
	w.stores = make(map[component.ComponentID]store)
	w.events.flush()
}

// Query returns live entities that have every listed component.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	var smallest store
	for _, id := range ids {
		s, ok := w.stores[id]
		if !ok {
			return nil
		}
		if smallest == nil || s.size() < smallest.size() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.size())
	for _, e := range smallest.entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for _, id := range ids {
			if !w.stores[id].has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity holding the component.
func (w *World) First(id component.ComponentID) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[id]
	if !ok {
		return 0, false
	}
	for _, e := range s.entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
