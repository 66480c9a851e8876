package usuario

import (
	"context"

	"ecommerce/domain/shared"
)

type Repository interface {
	shared.Repository[Usuario]

	GetByEmail(ctx context.Context, email string) (*Usuario, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByBrokerID(ctx context.Context, brokerID int64) ([]*Usuario, error)
	GetByLojaID(ctx context.Context, lojaID int64) ([]*Usuario, error)
	GetByVarejistaID(ctx context.Context, varejistaID int64) ([]*Usuario, error)
	GetAtivos(ctx context.Context) ([]*Usuario, error)
	FindBySpecification(ctx context.Context, spec shared.Specification[*Usuario]) ([]*Usuario, error)
}
