package mysql

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecommerce/domain/shared"
	"ecommerce/domain/varejista"
	"ecommerce/infrastructure/persistence/mysql/po"
)

type VarejistaRepository struct {
	store[varejista.Varejista, po.VarejistaPO]
}

func NewVarejistaRepository(db *gorm.DB) *VarejistaRepository {
	return &VarejistaRepository{store[varejista.Varejista, po.VarejistaPO]{
		db:       db,
		entity:   "varejista",
		idColumn: "IdVarejista",
		toPO:     po.FromVarejistaDomain,
		toDomain: (*po.VarejistaPO).ToDomain,
		idOf:     func(p *po.VarejistaPO) int64 { return p.IdVarejista },
		assignID: (*varejista.Varejista).AssignID,
	}}
}

func (r *VarejistaRepository) GetByID(ctx context.Context, id int64) (*varejista.Varejista, error) {
	return r.getByID(ctx, id)
}

func (r *VarejistaRepository) GetAll(ctx context.Context) ([]*varejista.Varejista, error) {
	return r.list(ctx)
}

func (r *VarejistaRepository) Add(ctx context.Context, v *varejista.Varejista) error {
	return r.add(ctx, v)
}

func (r *VarejistaRepository) Update(ctx context.Context, v *varejista.Varejista) error {
	return r.update(ctx, v)
}

func (r *VarejistaRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *VarejistaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, id)
}

func (r *VarejistaRepository) GetByCnpj(ctx context.Context, cnpj string) (*varejista.Varejista, error) {
	return r.first(ctx, where("CdCnpj = ?", shared.OnlyDigits(cnpj)))
}

func (r *VarejistaRepository) GetByBrokerID(ctx context.Context, brokerID int64) ([]*varejista.Varejista, error) {
	linked := r.conn(ctx).Model(&po.BrokerVarejistaPO{}).Select("IdVarejista").Where("IdBroker = ?", brokerID)
	return r.list(ctx, where("IdVarejista IN (?)", linked))
}

func (r *VarejistaRepository) ExistsByNome(ctx context.Context, nome string, ignorarID *int64) (bool, error) {
	return r.matches(ctx, where("NmVarejista = ?", strings.TrimSpace(nome)), excluding(r.idColumn, ignorarID))
}

func (r *VarejistaRepository) FindBySpecification(ctx context.Context, spec shared.Specification[*varejista.Varejista]) ([]*varejista.Varejista, error) {
	return r.findBySpecification(ctx, spec, varejistaLeaf)
}

func varejistaLeaf(spec shared.Specification[*varejista.Varejista]) (clause.Expression, bool) {
	switch s := spec.(type) {
	case varejista.ByCnpjSpecification:
		return clause.Eq{Column: "CdCnpj", Value: shared.OnlyDigits(s.Cnpj)}, true
	case varejista.ByActiveSpecification:
		return clause.Eq{Column: "IsActive", Value: s.Active}, true
	}
	return nil, false
}

var _ varejista.Repository = (*VarejistaRepository)(nil)
