package mysql

import (
	"gorm.io/gorm"

	"ecommerce/domain/shared"
	"ecommerce/infrastructure/persistence/retry"
)

// UnitOfWorkFactory hands every use case its own UnitOfWork over a shared
// connection pool and event bus.
type UnitOfWorkFactory struct {
	db          *gorm.DB
	publisher   shared.Publisher
	retryConfig retry.Config
}

func NewUnitOfWorkFactory(db *gorm.DB, publisher shared.Publisher, retryConfig retry.Config) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		db:          db,
		publisher:   publisher,
		retryConfig: retryConfig,
	}
}

func (f *UnitOfWorkFactory) New() shared.UnitOfWork {
	uow := NewUnitOfWork(f.db, f.publisher)
	uow.SetRetryConfig(f.retryConfig)
	return uow
}

var _ shared.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
