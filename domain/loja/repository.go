package loja

import (
	"context"

	"ecommerce/domain/shared"
)

type Repository interface {
	shared.Repository[Loja]

	GetByCnpj(ctx context.Context, cnpj string) (*Loja, error)
	GetByCodigo(ctx context.Context, codigo string) (*Loja, error)
	GetByVarejistaID(ctx context.Context, varejistaID int64) ([]*Loja, error)
	GetByLojistaID(ctx context.Context, lojistaID int64) ([]*Loja, error)

	// ExistsByNome looks for the name among the stores of one retailer.
	ExistsByNome(ctx context.Context, nome string, varejistaID int64, ignorarID *int64) (bool, error)

	FindBySpecification(ctx context.Context, spec shared.Specification[*Loja]) ([]*Loja, error)
}
