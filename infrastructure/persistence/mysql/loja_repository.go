package mysql

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecommerce/domain/loja"
	"ecommerce/domain/shared"
	"ecommerce/infrastructure/persistence/mysql/po"
)

type LojaRepository struct {
	store[loja.Loja, po.LojaPO]
}

func NewLojaRepository(db *gorm.DB) *LojaRepository {
	return &LojaRepository{store[loja.Loja, po.LojaPO]{
		db:       db,
		entity:   "loja",
		idColumn: "IdLoja",
		toPO:     po.FromLojaDomain,
		toDomain: (*po.LojaPO).ToDomain,
		idOf:     func(p *po.LojaPO) int64 { return p.IdLoja },
		assignID: (*loja.Loja).AssignID,
	}}
}

func (r *LojaRepository) GetByID(ctx context.Context, id int64) (*loja.Loja, error) {
	return r.getByID(ctx, id)
}

func (r *LojaRepository) GetAll(ctx context.Context) ([]*loja.Loja, error) {
	return r.list(ctx)
}

func (r *LojaRepository) Add(ctx context.Context, l *loja.Loja) error {
	return r.add(ctx, l)
}

func (r *LojaRepository) Update(ctx context.Context, l *loja.Loja) error {
	return r.update(ctx, l)
}

func (r *LojaRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *LojaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, id)
}

func (r *LojaRepository) GetByCnpj(ctx context.Context, cnpj string) (*loja.Loja, error) {
	return r.first(ctx, where("CdCnpj = ?", shared.OnlyDigits(cnpj)))
}

func (r *LojaRepository) GetByCodigo(ctx context.Context, codigo string) (*loja.Loja, error) {
	return r.first(ctx, where("CdLoja = ?", strings.TrimSpace(codigo)))
}

func (r *LojaRepository) GetByVarejistaID(ctx context.Context, varejistaID int64) ([]*loja.Loja, error) {
	return r.list(ctx, where("IdVarejista = ?", varejistaID))
}

func (r *LojaRepository) GetByLojistaID(ctx context.Context, lojistaID int64) ([]*loja.Loja, error) {
	return r.list(ctx, where("IdLojista = ?", lojistaID))
}

func (r *LojaRepository) ExistsByNome(ctx context.Context, nome string, varejistaID int64, ignorarID *int64) (bool, error) {
	return r.matches(ctx,
		where("NmLoja = ? AND IdVarejista = ?", strings.TrimSpace(nome), varejistaID),
		excluding(r.idColumn, ignorarID))
}

func (r *LojaRepository) FindBySpecification(ctx context.Context, spec shared.Specification[*loja.Loja]) ([]*loja.Loja, error) {
	return r.findBySpecification(ctx, spec, lojaLeaf)
}

func lojaLeaf(spec shared.Specification[*loja.Loja]) (clause.Expression, bool) {
	switch s := spec.(type) {
	case loja.ByVarejistaSpecification:
		return clause.Eq{Column: "IdVarejista", Value: s.VarejistaID}, true
	case loja.ByActiveSpecification:
		return clause.Eq{Column: "IsActive", Value: s.Active}, true
	}
	return nil, false
}

var _ loja.Repository = (*LojaRepository)(nil)
