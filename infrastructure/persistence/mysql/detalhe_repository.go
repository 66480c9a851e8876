package mysql

import (
	"context"

	"gorm.io/gorm"

	"ecommerce/domain/importacao"
	"ecommerce/infrastructure/persistence/mysql/po"
)

// DetalheRepository stores the rows of LogImportacaoVarejoDetalhe.
type DetalheRepository struct {
	store[importacao.Detalhe, po.DetalhePO]
}

func NewDetalheRepository(db *gorm.DB) *DetalheRepository {
	return &DetalheRepository{store[importacao.Detalhe, po.DetalhePO]{
		db:       db,
		entity:   "log_importacao_varejo_detalhe",
		idColumn: "IdDetalhe",
		toPO:     po.FromDetalheDomain,
		toDomain: (*po.DetalhePO).ToDomain,
		idOf:     func(p *po.DetalhePO) int64 { return p.IdDetalhe },
		assignID: (*importacao.Detalhe).AssignID,
	}}
}

func (r *DetalheRepository) GetByID(ctx context.Context, id int64) (*importacao.Detalhe, error) {
	return r.getByID(ctx, id)
}

func (r *DetalheRepository) GetAll(ctx context.Context) ([]*importacao.Detalhe, error) {
	return r.list(ctx)
}

func (r *DetalheRepository) Add(ctx context.Context, d *importacao.Detalhe) error {
	return r.add(ctx, d)
}

func (r *DetalheRepository) Update(ctx context.Context, d *importacao.Detalhe) error {
	return r.update(ctx, d)
}

func (r *DetalheRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *DetalheRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, id)
}

func (r *DetalheRepository) GetByLogID(ctx context.Context, idLog int64) ([]*importacao.Detalhe, error) {
	return r.list(ctx, where("IdLog = ?", idLog))
}

var _ importacao.Repository = (*DetalheRepository)(nil)
