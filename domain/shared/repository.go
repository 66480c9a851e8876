package shared

import "context"

// Repository is the CRUD contract shared by every aggregate store. Delete is
// a hard delete.
type Repository[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	GetAll(ctx context.Context) ([]*T, error)
	Add(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// RequirePositiveID is the guard every service applies to incoming ids.
func RequirePositiveID(id int64, field string) error {
	if id <= 0 {
		return NewArgumentError(field, field+" deve ser maior que zero")
	}
	return nil
}
