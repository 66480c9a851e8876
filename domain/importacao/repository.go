package importacao

import (
	"context"

	"ecommerce/domain/shared"
)

type Repository interface {
	shared.Repository[Detalhe]

	GetByLogID(ctx context.Context, idLog int64) ([]*Detalhe, error)
}
