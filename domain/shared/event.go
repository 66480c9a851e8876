package shared

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type DomainEvent interface {
	EventName() string
	OccurredOn() time.Time
	GetAggregateID() string
	UserName() string
}

type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	Name() string
}

// Publisher is what services depend on to emit events.
type Publisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}

// EventBase holds the fields every event carries. Embed it by value.
type EventBase struct {
	occurredOn time.Time
	userName   string
}

func NewEventBase(userName string) EventBase {
	return EventBase{occurredOn: time.Now().UTC(), userName: userName}
}

func (e EventBase) OccurredOn() time.Time { return e.occurredOn }
func (e EventBase) UserName() string      { return e.userName }

func ValidateEvent(event DomainEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.EventName() == "" {
		return fmt.Errorf("event name cannot be empty")
	}
	if event.GetAggregateID() == "" {
		return fmt.Errorf("aggregate ID cannot be empty")
	}
	if event.OccurredOn().IsZero() {
		return fmt.Errorf("occurred on time cannot be zero")
	}
	return nil
}

// EventBus maps an event name to an ordered list of handlers. Publish runs
// them one after another on the caller's goroutine; the first failure stops
// the remaining handlers and is returned.
type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (bus *EventBus) Publish(ctx context.Context, event DomainEvent) error {
	if err := ValidateEvent(event); err != nil {
		return err
	}

	bus.mu.RLock()
	handlers := append([]EventHandler(nil), bus.handlers[event.EventName()]...)
	bus.mu.RUnlock()

	for _, handler := range handlers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := handler.Handle(ctx, event); err != nil {
			return fmt.Errorf("handler %s: %w", handler.Name(), err)
		}
	}
	return nil
}

func (bus *EventBus) PublishAll(ctx context.Context, events []DomainEvent) error {
	for _, event := range events {
		if err := bus.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (bus *EventBus) Subscribe(eventName string, handler EventHandler) error {
	if eventName == "" {
		return fmt.Errorf("event name cannot be empty")
	}
	if isNilHandler(handler) {
		return fmt.Errorf("handler cannot be nil")
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()

	for _, h := range bus.handlers[eventName] {
		if h.Name() == handler.Name() {
			return fmt.Errorf("handler %s already subscribed to %s", handler.Name(), eventName)
		}
	}

	bus.handlers[eventName] = append(bus.handlers[eventName], handler)
	return nil
}

func (bus *EventBus) Unsubscribe(eventName string, handler EventHandler) error {
	if isNilHandler(handler) {
		return fmt.Errorf("handler cannot be nil")
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()

	handlers := bus.handlers[eventName]
	for i, h := range handlers {
		if h.Name() == handler.Name() {
			bus.handlers[eventName] = append(handlers[:i:i], handlers[i+1:]...)
			return nil
		}
	}
	return nil
}

// Handlers lists the handler names subscribed to eventName, in order.
func (bus *EventBus) Handlers(eventName string) []string {
	bus.mu.RLock()
	defer bus.mu.RUnlock()

	names := make([]string, 0, len(bus.handlers[eventName]))
	for _, h := range bus.handlers[eventName] {
		names = append(names, h.Name())
	}
	return names
}

var _ Publisher = (*EventBus)(nil)

// isNilHandler also catches a FuncHandler built without a function.
func isNilHandler(handler EventHandler) bool {
	if handler == nil {
		return true
	}
	if fh, ok := handler.(*FuncHandler); ok {
		return fh == nil || fh.fn == nil
	}
	return false
}

type FuncHandler struct {
	name string
	fn   func(context.Context, DomainEvent) error
}

func NewFuncHandler(name string, fn func(context.Context, DomainEvent) error) *FuncHandler {
	if name == "" {
		name = fmt.Sprintf("func-handler-%d", time.Now().UnixNano())
	}
	return &FuncHandler{name: name, fn: fn}
}

func (h *FuncHandler) Handle(ctx context.Context, event DomainEvent) error {
	if h.fn == nil {
		return fmt.Errorf("handler %s has no function", h.name)
	}
	return h.fn(ctx, event)
}

func (h *FuncHandler) Name() string {
	return h.name
}

// Typed adapts a handler written against a concrete event type. Events of
// any other type are rejected.
func Typed[E DomainEvent](name string, fn func(context.Context, E) error) *FuncHandler {
	if fn == nil {
		return NewFuncHandler(name, nil)
	}
	return NewFuncHandler(name, func(ctx context.Context, event DomainEvent) error {
		e, ok := event.(E)
		if !ok {
			return fmt.Errorf("unexpected event type %T for %s", event, event.EventName())
		}
		return fn(ctx, e)
	})
}
