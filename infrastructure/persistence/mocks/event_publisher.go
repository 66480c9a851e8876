package mocks

import (
	"context"
	"sync"

	"ecommerce/domain/shared"
)

// EventPublisher records every published event. Err, when set, is returned
// from Publish after recording.
type EventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
	Err    error
}

func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

func (p *EventPublisher) Publish(_ context.Context, event shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.Err
}

func (p *EventPublisher) Events() []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]shared.DomainEvent(nil), p.events...)
}

// Names lists the event names in publish order.
func (p *EventPublisher) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, len(p.events))
	for i, e := range p.events {
		names[i] = e.EventName()
	}
	return names
}

var _ shared.Publisher = (*EventPublisher)(nil)
