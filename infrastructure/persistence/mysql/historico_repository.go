package mysql

import (
	"context"

	"gorm.io/gorm"

	"ecommerce/domain/historico"
	"ecommerce/infrastructure/persistence/mysql/po"
)

type HistoricoRepository struct {
	store[historico.Historico, po.HistoricoPO]
}

func NewHistoricoRepository(db *gorm.DB) *HistoricoRepository {
	return &HistoricoRepository{store[historico.Historico, po.HistoricoPO]{
		db:       db,
		entity:   "historicos",
		idColumn: "Historicos_Cod",
		toPO:     po.FromHistoricoDomain,
		toDomain: (*po.HistoricoPO).ToDomain,
		idOf:     func(p *po.HistoricoPO) int64 { return p.Historicos_Cod },
		assignID: (*historico.Historico).AssignID,
	}}
}

func (r *HistoricoRepository) GetByID(ctx context.Context, id int64) (*historico.Historico, error) {
	return r.getByID(ctx, id)
}

func (r *HistoricoRepository) GetAll(ctx context.Context) ([]*historico.Historico, error) {
	return r.list(ctx)
}

func (r *HistoricoRepository) Add(ctx context.Context, h *historico.Historico) error {
	return r.add(ctx, h)
}

func (r *HistoricoRepository) Update(ctx context.Context, h *historico.Historico) error {
	return r.update(ctx, h)
}

func (r *HistoricoRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *HistoricoRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, id)
}

func (r *HistoricoRepository) GetByUsuarioCod(ctx context.Context, usuarioCod int64) ([]*historico.Historico, error) {
	return r.list(ctx, where("Usuarios_Cod = ?", usuarioCod))
}

func (r *HistoricoRepository) GetByEmpresaID(ctx context.Context, idEmpresa int64) ([]*historico.Historico, error) {
	return r.list(ctx, where("IdEmpresa = ?", idEmpresa))
}

var _ historico.Repository = (*HistoricoRepository)(nil)
