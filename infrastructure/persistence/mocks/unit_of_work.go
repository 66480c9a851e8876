package mocks

import (
	"context"
	"sync"

	"ecommerce/domain/shared"
)

// UnitOfWork runs fn without a transaction, then dispatches the events of the
// registered aggregates to Publisher, mirroring the MySQL implementation.
type UnitOfWork struct {
	Publisher  shared.Publisher
	aggregates []shared.AggregateRoot
	Executions int
}

func NewUnitOfWork(publisher shared.Publisher) *UnitOfWork {
	return &UnitOfWork{Publisher: publisher}
}

func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	u.aggregates = u.aggregates[:0]
	u.Executions++

	if err := fn(ctx); err != nil {
		return err
	}
	for _, agg := range u.aggregates {
		for _, event := range agg.PullEvents() {
			if u.Publisher == nil {
				continue
			}
			if err := u.Publisher.Publish(ctx, event); err != nil {
				return err
			}
		}
	}
	return nil
}

func (u *UnitOfWork) RegisterNew(aggregate shared.AggregateRoot) {
	u.aggregates = append(u.aggregates, aggregate)
}

func (u *UnitOfWork) RegisterDirty(aggregate shared.AggregateRoot) {
	u.aggregates = append(u.aggregates, aggregate)
}

func (u *UnitOfWork) RegisterRemoved(aggregate shared.AggregateRoot) {
	u.aggregates = append(u.aggregates, aggregate)
}

// UnitOfWorkFactory keeps every UnitOfWork it created for later inspection.
type UnitOfWorkFactory struct {
	Publisher shared.Publisher

	mu      sync.Mutex
	created []*UnitOfWork
}

func NewUnitOfWorkFactory(publisher shared.Publisher) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{Publisher: publisher}
}

func (f *UnitOfWorkFactory) New() shared.UnitOfWork {
	f.mu.Lock()
	defer f.mu.Unlock()
	uow := NewUnitOfWork(f.Publisher)
	f.created = append(f.created, uow)
	return uow
}

func (f *UnitOfWorkFactory) Created() []*UnitOfWork {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*UnitOfWork(nil), f.created...)
}

var (
	_ shared.UnitOfWork        = (*UnitOfWork)(nil)
	_ shared.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
)
