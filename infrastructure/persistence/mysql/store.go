package mysql

import (
	"context"
	"errors"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"ecommerce/domain/shared"
	"ecommerce/infrastructure/persistence"
	"ecommerce/infrastructure/persistence/specification"
)

const mysqlDuplicateEntry = 1062

// store holds the CRUD plumbing shared by the repositories. E is the domain
// entity and P its persistence object.
type store[E any, P any] struct {
	db       *gorm.DB
	entity   string
	idColumn string

	toPO     func(*E) *P
	toDomain func(*P) *E
	idOf     func(*P) int64
	assignID func(*E, int64)
}

// conn joins the unit-of-work transaction carried in ctx when there is one.
func (s *store[E, P]) conn(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}

func (s *store[E, P]) idEq() string {
	return s.idColumn + " = ?"
}

func (s *store[E, P]) getByID(ctx context.Context, id int64) (*E, error) {
	var row P
	if err := s.conn(ctx).Where(s.idEq(), id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(s.entity, id)
		}
		return nil, err
	}
	return s.toDomain(&row), nil
}

// scope is a reusable query fragment.
type scope = func(*gorm.DB) *gorm.DB

func where(query any, args ...any) scope {
	return func(db *gorm.DB) *gorm.DB { return db.Where(query, args...) }
}

// excluding drops the row with id ignorarID, when given.
func excluding(idColumn string, ignorarID *int64) scope {
	return func(db *gorm.DB) *gorm.DB {
		if ignorarID == nil {
			return db
		}
		return db.Where(idColumn+" <> ?", *ignorarID)
	}
}

// first returns (nil, nil) when no row matches.
func (s *store[E, P]) first(ctx context.Context, scopes ...scope) (*E, error) {
	var row P
	err := s.conn(ctx).Scopes(scopes...).Order(s.idColumn).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.toDomain(&row), nil
}

func (s *store[E, P]) list(ctx context.Context, scopes ...scope) ([]*E, error) {
	var rows []*P
	if err := s.conn(ctx).Scopes(scopes...).Order(s.idColumn).Find(&rows).Error; err != nil {
		return nil, err
	}
	return s.domains(rows), nil
}

func (s *store[E, P]) domains(rows []*P) []*E {
	out := make([]*E, len(rows))
	for i, row := range rows {
		out[i] = s.toDomain(row)
	}
	return out
}

func (s *store[E, P]) matches(ctx context.Context, scopes ...scope) (bool, error) {
	var n int64
	if err := s.conn(ctx).Model(new(P)).Scopes(scopes...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *store[E, P]) exists(ctx context.Context, id int64) (bool, error) {
	return s.matches(ctx, where(s.idEq(), id))
}

func (s *store[E, P]) add(ctx context.Context, entity *E) error {
	row := s.toPO(entity)
	if err := s.conn(ctx).Create(row).Error; err != nil {
		return s.translate(err)
	}
	s.assignID(entity, s.idOf(row))
	return nil
}

func (s *store[E, P]) update(ctx context.Context, entity *E) error {
	row := s.toPO(entity)
	id := s.idOf(row)
	if id <= 0 {
		return shared.NewArgumentError("id", "id deve ser maior que zero")
	}

	result := s.conn(ctx).Model(row).Select("*").Omit(s.idColumn).Updates(row)
	if result.Error != nil {
		return s.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		// MySQL reports unchanged rows as not affected.
		found, err := s.exists(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return shared.NewNotFoundError(s.entity, id)
		}
	}
	return nil
}

func (s *store[E, P]) delete(ctx context.Context, id int64) error {
	result := s.conn(ctx).Where(s.idEq(), id).Delete(new(P))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(s.entity, id)
	}
	return nil
}

func (s *store[E, P]) findBySpecification(ctx context.Context, spec shared.Specification[*E], leaf specification.Leaf[*E]) ([]*E, error) {
	db, refine := specification.Apply(s.conn(ctx), spec, leaf)
	var rows []*P
	if err := db.Order(s.idColumn).Find(&rows).Error; err != nil {
		return nil, err
	}
	return specification.Refine(ctx, spec, s.domains(rows), refine), nil
}

// translate turns a unique-index violation into a conflict.
func (s *store[E, P]) translate(err error) error {
	if isDuplicateKeyError(err) {
		return shared.NewConflictError(s.entity, "Registro duplicado")
	}
	return err
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqlDriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
