package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Repository is the testify mock of shared.Repository[T]. Entity mocks embed
// it and add their own lookups.
type Repository[T any] struct {
	mock.Mock
}

func (m *Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	return one[T](args, 0), args.Error(1)
}

func (m *Repository[T]) GetAll(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	return many[T](args, 0), args.Error(1)
}

func (m *Repository[T]) Add(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *Repository[T]) Update(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *Repository[T]) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *Repository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func one[T any](args mock.Arguments, i int) *T {
	v, _ := args.Get(i).(*T)
	return v
}

func many[T any](args mock.Arguments, i int) []*T {
	v, _ := args.Get(i).([]*T)
	return v
}
