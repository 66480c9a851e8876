package mysql

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecommerce/domain/broker"
	"ecommerce/domain/shared"
	"ecommerce/infrastructure/persistence/mysql/po"
)

type BrokerRepository struct {
	store[broker.Broker, po.BrokerPO]
}

func NewBrokerRepository(db *gorm.DB) *BrokerRepository {
	return &BrokerRepository{store[broker.Broker, po.BrokerPO]{
		db:       db,
		entity:   "broker",
		idColumn: "IdBroker",
		toPO:     po.FromBrokerDomain,
		toDomain: (*po.BrokerPO).ToDomain,
		idOf:     func(p *po.BrokerPO) int64 { return p.IdBroker },
		assignID: (*broker.Broker).AssignID,
	}}
}

func (r *BrokerRepository) GetByID(ctx context.Context, id int64) (*broker.Broker, error) {
	return r.getByID(ctx, id)
}

func (r *BrokerRepository) GetAll(ctx context.Context) ([]*broker.Broker, error) {
	return r.list(ctx)
}

func (r *BrokerRepository) Add(ctx context.Context, b *broker.Broker) error {
	return r.add(ctx, b)
}

func (r *BrokerRepository) Update(ctx context.Context, b *broker.Broker) error {
	return r.update(ctx, b)
}

func (r *BrokerRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *BrokerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, id)
}

func (r *BrokerRepository) GetByNome(ctx context.Context, nome string) (*broker.Broker, error) {
	return r.first(ctx, where("NmBroker = ?", strings.TrimSpace(nome)))
}

func (r *BrokerRepository) ExistsByNome(ctx context.Context, nome string, ignorarID *int64) (bool, error) {
	return r.matches(ctx, where("NmBroker = ?", strings.TrimSpace(nome)), excluding(r.idColumn, ignorarID))
}

func (r *BrokerRepository) GetByVarejistaID(ctx context.Context, varejistaID int64) ([]*broker.Broker, error) {
	linked := r.conn(ctx).Model(&po.BrokerVarejistaPO{}).Select("IdBroker").Where("IdVarejista = ?", varejistaID)
	return r.list(ctx, where("IdBroker IN (?)", linked))
}

func (r *BrokerRepository) FindBySpecification(ctx context.Context, spec shared.Specification[*broker.Broker]) ([]*broker.Broker, error) {
	return r.findBySpecification(ctx, spec, brokerLeaf)
}

func brokerLeaf(spec shared.Specification[*broker.Broker]) (clause.Expression, bool) {
	switch s := spec.(type) {
	case broker.ByNomeSpecification:
		return clause.Eq{Column: "NmBroker", Value: s.Nome}, true
	case broker.ByActiveSpecification:
		return clause.Eq{Column: "IsActive", Value: s.Active}, true
	case broker.HasNomeSpecification:
		return clause.Neq{Column: "NmBroker", Value: ""}, true
	}
	return nil, false
}

var _ broker.Repository = (*BrokerRepository)(nil)
