package shared

// AggregateRoot is the entry point of a consistency boundary. It records the
// events raised by its behaviour until the unit of work pulls them.
type AggregateRoot interface {
	ID() int64

	// PullEvents returns the queued events and clears the queue.
	PullEvents() []DomainEvent
}

// Entity is anything identified by a database id.
type Entity interface {
	ID() int64
}

// EventRecorder is embedded by aggregates to queue their events.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

func (r *EventRecorder) PullEvents() []DomainEvent {
	events := make([]DomainEvent, len(r.events))
	copy(events, r.events)
	r.events = nil
	return events
}

// PendingEvents peeks at the queue without clearing it.
func (r *EventRecorder) PendingEvents() []DomainEvent {
	return append([]DomainEvent(nil), r.events...)
}

// Rewrite replaces every queued event with fn(event); used when the
// aggregate receives its id after the events were recorded.
func (r *EventRecorder) Rewrite(fn func(DomainEvent) DomainEvent) {
	for i, e := range r.events {
		r.events[i] = fn(e)
	}
}
