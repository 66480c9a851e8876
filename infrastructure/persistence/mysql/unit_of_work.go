package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ecommerce/domain/shared"
	"ecommerce/infrastructure/persistence"
	"ecommerce/infrastructure/persistence/retry"
)

// UnitOfWork runs one use case in a GORM transaction. It is not safe for
// concurrent use; take a fresh one from UnitOfWorkFactory per use case.
type UnitOfWork struct {
	db          *gorm.DB
	outbox      shared.OutboxRepository
	publisher   shared.Publisher
	retryConfig retry.Config

	aggregates []shared.AggregateRoot
	// pulled keeps the events already taken from an aggregate, so a retried
	// attempt still sees them.
	pulled map[shared.AggregateRoot][]shared.DomainEvent
}

// NewUnitOfWork builds a unit of work. publisher may be nil, in which case
// events only reach the outbox.
func NewUnitOfWork(db *gorm.DB, publisher shared.Publisher) *UnitOfWork {
	return &UnitOfWork{
		db:          db,
		outbox:      NewOutboxRepository(db),
		publisher:   publisher,
		retryConfig: retry.DefaultConfig,
		pulled:      make(map[shared.AggregateRoot][]shared.DomainEvent),
	}
}

func (u *UnitOfWork) SetRetryConfig(config retry.Config) {
	u.retryConfig = config
}

// Execute runs fn inside a transaction. After fn succeeds the events of the
// registered aggregates are written to the outbox and dispatched to the
// publisher, still inside the transaction; any failure rolls back. Deadlocks
// and lock timeouts are retried according to the retry config.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	err := retry.ExecuteWithRetry(ctx, u.retryConfig, func(ctx context.Context) error {
		u.aggregates = u.aggregates[:0]

		tx := u.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return fmt.Errorf("failed to begin transaction: %w", tx.Error)
		}
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
				panic(r)
			}
		}()
		txCtx := persistence.ContextWithTx(ctx, tx)

		if err := fn(txCtx); err != nil {
			tx.Rollback()
			return err
		}
		if err := u.flush(txCtx); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	})
	if err == nil {
		clear(u.pulled)
	}
	return err
}

func (u *UnitOfWork) flush(ctx context.Context) error {
	for _, agg := range u.aggregates {
		events := append(u.pulled[agg], agg.PullEvents()...)
		u.pulled[agg] = events

		for _, event := range events {
			if err := u.outbox.SaveEvent(ctx, event); err != nil {
				return fmt.Errorf("failed to save event to outbox: %w", err)
			}
			if u.publisher == nil {
				continue
			}
			if err := u.publisher.Publish(ctx, event); err != nil {
				return fmt.Errorf("failed to dispatch %s: %w", event.EventName(), err)
			}
		}
	}
	return nil
}

func (u *UnitOfWork) register(aggregate shared.AggregateRoot) {
	for _, a := range u.aggregates {
		if a == aggregate {
			return
		}
	}
	u.aggregates = append(u.aggregates, aggregate)
}

func (u *UnitOfWork) RegisterNew(aggregate shared.AggregateRoot) {
	u.register(aggregate)
}

func (u *UnitOfWork) RegisterDirty(aggregate shared.AggregateRoot) {
	u.register(aggregate)
}

func (u *UnitOfWork) RegisterRemoved(aggregate shared.AggregateRoot) {
	u.register(aggregate)
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)
