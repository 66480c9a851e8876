package mysql

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecommerce/domain/shared"
	"ecommerce/domain/usuario"
	"ecommerce/infrastructure/persistence/mysql/po"
)

type UsuarioRepository struct {
	store[usuario.Usuario, po.UsuarioPO]
}

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{store[usuario.Usuario, po.UsuarioPO]{
		db:       db,
		entity:   "usuario",
		idColumn: "Usuarios_Cod",
		toPO:     po.FromUsuarioDomain,
		toDomain: (*po.UsuarioPO).ToDomain,
		idOf:     func(p *po.UsuarioPO) int64 { return p.Usuarios_Cod },
		assignID: (*usuario.Usuario).AssignID,
	}}
}

func (r *UsuarioRepository) GetByID(ctx context.Context, id int64) (*usuario.Usuario, error) {
	return r.getByID(ctx, id)
}

func (r *UsuarioRepository) GetAll(ctx context.Context) ([]*usuario.Usuario, error) {
	return r.list(ctx)
}

func (r *UsuarioRepository) Add(ctx context.Context, u *usuario.Usuario) error {
	return r.add(ctx, u)
}

func (r *UsuarioRepository) Update(ctx context.Context, u *usuario.Usuario) error {
	return r.update(ctx, u)
}

func (r *UsuarioRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *UsuarioRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*usuario.Usuario, error) {
	return r.first(ctx, where("Usuarios_Ema = ?", normalizeEmail(email)))
}

func (r *UsuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.matches(ctx, where("Usuarios_Ema = ?", normalizeEmail(email)))
}

func (r *UsuarioRepository) GetByBrokerID(ctx context.Context, brokerID int64) ([]*usuario.Usuario, error) {
	return r.list(ctx, where("IdBroker = ?", brokerID))
}

func (r *UsuarioRepository) GetByLojaID(ctx context.Context, lojaID int64) ([]*usuario.Usuario, error) {
	return r.list(ctx, where("IdLoja = ?", lojaID))
}

func (r *UsuarioRepository) GetByVarejistaID(ctx context.Context, varejistaID int64) ([]*usuario.Usuario, error) {
	return r.list(ctx, where("IdVarejista = ?", varejistaID))
}

func (r *UsuarioRepository) GetAtivos(ctx context.Context) ([]*usuario.Usuario, error) {
	return r.list(ctx, where("IsActive = ?", true))
}

func (r *UsuarioRepository) FindBySpecification(ctx context.Context, spec shared.Specification[*usuario.Usuario]) ([]*usuario.Usuario, error) {
	return r.findBySpecification(ctx, spec, usuarioLeaf)
}

func usuarioLeaf(spec shared.Specification[*usuario.Usuario]) (clause.Expression, bool) {
	switch s := spec.(type) {
	case usuario.ByActiveSpecification:
		return clause.Eq{Column: "IsActive", Value: s.Active}, true
	case usuario.ByVarejistaSpecification:
		return clause.Eq{Column: "IdVarejista", Value: s.VarejistaID}, true
	}
	return nil, false
}

var _ usuario.Repository = (*UsuarioRepository)(nil)
