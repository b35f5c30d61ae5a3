package ecs

import "github.com/milk9111/servant/ecs/component"

// Query returns the live entities that carry every listed component.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(ids))
	for _, id := range ids {
		s := w.store(id, false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}

	// iterate smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	out := make([]Entity, 0, sets[smallest].Len())
outer:
	for _, id := range sets[smallest].denseIDs {
		for i, s := range sets {
			if i != smallest && !s.Has(id) {
				continue outer
			}
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity carrying the component.
func (w *World) First(id component.ComponentID) (Entity, bool) {
	s := w.store(id, false)
	if s == nil {
		return 0, false
	}
	for _, slot := range s.denseIDs {
		if e, ok := w.entities.handle(slot); ok {
			return e, true
		}
	}
	return 0, false
}
