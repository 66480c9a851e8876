package shared

import "context"

// UnitOfWork wraps a use case in one transaction. Aggregates registered
// during Execute have their events stored in the outbox and dispatched
// before the transaction commits; a failure at any step rolls everything back.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
	RegisterNew(aggregate AggregateRoot)
	RegisterDirty(aggregate AggregateRoot)
	RegisterRemoved(aggregate AggregateRoot)
}

type UnitOfWorkFactory interface {
	New() UnitOfWork
}

type OutboxRepository interface {
	SaveEvent(ctx context.Context, event DomainEvent) error
}
