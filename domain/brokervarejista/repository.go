package brokervarejista

import (
	"context"

	"ecommerce/domain/shared"
)

type Repository interface {
	shared.Repository[BrokerVarejista]

	ExistsRelacionamento(ctx context.Context, idBroker, idVarejista int64) (bool, error)
	GetByBrokerID(ctx context.Context, idBroker int64) ([]*BrokerVarejista, error)
	GetByVarejistaID(ctx context.Context, idVarejista int64) ([]*BrokerVarejista, error)
}
