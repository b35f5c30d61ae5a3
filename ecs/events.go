package ecs

// EventType identifies an event payload.
type EventType string

const (
	EventJumped  EventType = "jumped"
	EventLanded  EventType = "landed"
	EventStarted EventType = "started_moving"
	EventStopped EventType = "stopped_moving"
)

// Event is emitted by a system and visible to later systems in the same frame.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Each visits queued events of type t without consuming them.
func (q *EventQueue) Each(t EventType, fn func(Event)) {
	if q == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Type == t {
			fn(evt)
		}
	}
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
