package historico

import (
	"context"

	"ecommerce/domain/shared"
)

type Repository interface {
	shared.Repository[Historico]

	GetByUsuarioCod(ctx context.Context, usuarioCod int64) ([]*Historico, error)
	GetByEmpresaID(ctx context.Context, idEmpresa int64) ([]*Historico, error)
}
