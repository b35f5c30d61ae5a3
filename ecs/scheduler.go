package ecs

import "time"

// System updates a world each frame.
type System interface {
	Update(w *World, dt time.Duration)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system in order, then drops the frame's events.
func (s *Scheduler) Update(w *World, dt time.Duration) {
	for _, system := range s.systems {
		system.Update(w, dt)
	}
	w.Events().flush()
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
