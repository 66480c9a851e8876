package broker

import (
	"context"

	"ecommerce/domain/shared"
)

// Repository persists brokers. Single-result lookups return (nil, nil) when
// nothing matches; GetByID returns a not-found error instead.
type Repository interface {
	shared.Repository[Broker]

	GetByNome(ctx context.Context, nome string) (*Broker, error)

	// ExistsByNome ignores the broker with id ignorarID when it is not nil.
	ExistsByNome(ctx context.Context, nome string, ignorarID *int64) (bool, error)

	// GetByVarejistaID lists the brokers linked to a retailer.
	GetByVarejistaID(ctx context.Context, varejistaID int64) ([]*Broker, error)

	FindBySpecification(ctx context.Context, spec shared.Specification[*Broker]) ([]*Broker, error)
}
