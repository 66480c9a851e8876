package mysql

import (
	"context"

	"gorm.io/gorm"

	"ecommerce/domain/brokervarejista"
	"ecommerce/infrastructure/persistence/mysql/po"
)

type BrokerVarejistaRepository struct {
	store[brokervarejista.BrokerVarejista, po.BrokerVarejistaPO]
}

func NewBrokerVarejistaRepository(db *gorm.DB) *BrokerVarejistaRepository {
	return &BrokerVarejistaRepository{store[brokervarejista.BrokerVarejista, po.BrokerVarejistaPO]{
		db:       db,
		entity:   "broker_varejista",
		idColumn: "IdSequencial",
		toPO:     po.FromBrokerVarejistaDomain,
		toDomain: (*po.BrokerVarejistaPO).ToDomain,
		idOf:     func(p *po.BrokerVarejistaPO) int64 { return p.IdSequencial },
		assignID: (*brokervarejista.BrokerVarejista).AssignID,
	}}
}

func (r *BrokerVarejistaRepository) GetByID(ctx context.Context, id int64) (*brokervarejista.BrokerVarejista, error) {
	return r.getByID(ctx, id)
}

func (r *BrokerVarejistaRepository) GetAll(ctx context.Context) ([]*brokervarejista.BrokerVarejista, error) {
	return r.list(ctx)
}

func (r *BrokerVarejistaRepository) Add(ctx context.Context, bv *brokervarejista.BrokerVarejista) error {
	return r.add(ctx, bv)
}

func (r *BrokerVarejistaRepository) Update(ctx context.Context, bv *brokervarejista.BrokerVarejista) error {
	return r.update(ctx, bv)
}

func (r *BrokerVarejistaRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *BrokerVarejistaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, id)
}

func (r *BrokerVarejistaRepository) ExistsRelacionamento(ctx context.Context, idBroker, idVarejista int64) (bool, error) {
	return r.matches(ctx, where("IdBroker = ? AND IdVarejista = ?", idBroker, idVarejista))
}

func (r *BrokerVarejistaRepository) GetByBrokerID(ctx context.Context, idBroker int64) ([]*brokervarejista.BrokerVarejista, error) {
	return r.list(ctx, where("IdBroker = ?", idBroker))
}

func (r *BrokerVarejistaRepository) GetByVarejistaID(ctx context.Context, idVarejista int64) ([]*brokervarejista.BrokerVarejista, error) {
	return r.list(ctx, where("IdVarejista = ?", idVarejista))
}

var _ brokervarejista.Repository = (*BrokerVarejistaRepository)(nil)
