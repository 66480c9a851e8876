package varejista

import (
	"context"

	"ecommerce/domain/shared"
)

type Repository interface {
	shared.Repository[Varejista]

	// GetByCnpj accepts formatted or bare digits; (nil, nil) when absent.
	GetByCnpj(ctx context.Context, cnpj string) (*Varejista, error)
	GetByBrokerID(ctx context.Context, brokerID int64) ([]*Varejista, error)
	ExistsByNome(ctx context.Context, nome string, ignorarID *int64) (bool, error)
	FindBySpecification(ctx context.Context, spec shared.Specification[*Varejista]) ([]*Varejista, error)
}
