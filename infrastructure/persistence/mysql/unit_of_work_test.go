package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce/domain/broker"
	"ecommerce/domain/shared"
	"ecommerce/infrastructure/persistence"
	"ecommerce/infrastructure/persistence/mocks"
	"ecommerce/infrastructure/persistence/retry"
)

func fastRetry() retry.Config {
	return retry.Config{
		Enabled:            true,
		MaxAttempts:        3,
		InitialDelay:       time.Millisecond,
		MaxDelay:           5 * time.Millisecond,
		BackoffFactor:      2,
		RetryOnDeadlock:    true,
		RetryOnLockTimeout: true,
	}
}

func TestUnitOfWork_StoresAndDispatchesBeforeCommit(t *testing.T) {
	db, mock := newMockDB(t)
	bus := mocks.NewEventPublisher()
	uow := NewUnitOfWorkFactory(db, bus, fastRetry()).New()
	repo := NewBrokerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `Brokers`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `outbox_events`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := uow.Execute(context.Background(), func(ctx context.Context) error {
		require.NotNil(t, persistence.TxFromContext(ctx))
		b, err := broker.New("Acme", "alice")
		if err != nil {
			return err
		}
		if err := repo.Add(ctx, b); err != nil {
			return err
		}
		uow.RegisterNew(b)
		uow.RegisterDirty(b)
		return nil
	})
	require.NoError(t, err)

	events := bus.Events()
	require.Len(t, events, 1)
	assert.Equal(t, broker.EventName, events[0].EventName())
	assert.Equal(t, "7", events[0].GetAggregateID())
}

func TestUnitOfWork_HandlerFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	bus := mocks.NewEventPublisher()
	bus.Err = errors.New("handler exploded")
	uow := NewUnitOfWork(db, bus)
	uow.SetRetryConfig(fastRetry())
	repo := NewBrokerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `Brokers`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `outbox_events`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := uow.Execute(context.Background(), func(ctx context.Context) error {
		b, err := broker.New("Acme", "alice")
		if err != nil {
			return err
		}
		if err := repo.Add(ctx, b); err != nil {
			return err
		}
		uow.RegisterNew(b)
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler exploded")
}

func TestUnitOfWork_DomainErrorIsNotRetried(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUnitOfWork(db, nil)
	uow.SetRetryConfig(fastRetry())

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err := uow.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return shared.NewBusinessRuleError("broker", "Já existe um broker com este nome")
	})
	assert.True(t, errors.Is(err, shared.ErrBusinessRule))
	assert.Equal(t, 1, calls)
}

func TestUnitOfWork_PanicRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUnitOfWork(db, nil)
	uow.SetRetryConfig(fastRetry())

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.Execute(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_RetriesDeadlock(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUnitOfWork(db, nil)
	uow.SetRetryConfig(fastRetry())

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := uow.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return &mysqlDriver.MySQLError{Number: 1213, Message: "Deadlock found"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
