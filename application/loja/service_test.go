package loja

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"ecommerce/domain/loja"
	"ecommerce/domain/shared"
	"ecommerce/infrastructure/persistence/mocks"
)

type fixture struct {
	svc        *Service
	repo       *mocks.LojaRepository
	varejistas *mocks.VarejistaRepository
	bus        *mocks.EventPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		repo:       new(mocks.LojaRepository),
		varejistas: new(mocks.VarejistaRepository),
		bus:        mocks.NewEventPublisher(),
	}
	svc, err := NewService(f.repo, f.varejistas, mocks.NewUnitOfWorkFactory(f.bus), f.bus, zaptest.NewLogger(t))
	require.NoError(t, err)
	f.svc = svc
	return f
}

func request() LojaRequest {
	return LojaRequest{Cnpj: "11222333000181", Codigo: "C01", Nome: "Centro", IDVarejista: 9}
}

func TestCadastrar(t *testing.T) {
	f := newFixture(t)
	f.varejistas.On("Exists", mock.Anything, int64(9)).Return(true, nil)
	f.repo.On("ExistsByNome", mock.Anything, "Centro", int64(9), (*int64)(nil)).Return(false, nil)
	f.repo.On("GetByCnpj", mock.Anything, "11222333000181").Return(nil, nil)
	f.repo.On("GetByCodigo", mock.Anything, "C01").Return(nil, nil)
	f.repo.On("Add", mock.Anything, mock.AnythingOfType("*loja.Loja")).Return(nil)

	resp, err := f.svc.Cadastrar(context.Background(), request(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Centro", resp.Nome)
	assert.Equal(t, []string{loja.EventName}, f.bus.Names())
}

func TestCadastrarUnknownVarejista(t *testing.T) {
	f := newFixture(t)
	f.varejistas.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	_, err := f.svc.Cadastrar(context.Background(), request(), "alice")
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	f.repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCadastrarDuplicateCodigo(t *testing.T) {
	f := newFixture(t)
	other := loja.Rebuild(shared.AuditSnapshot{ID: 2, CreatedBy: "bob"}, loja.Dados{Cnpj: "99888777000166", Codigo: "C01", Nome: "Norte"})
	f.varejistas.On("Exists", mock.Anything, int64(9)).Return(true, nil)
	f.repo.On("ExistsByNome", mock.Anything, "Centro", int64(9), (*int64)(nil)).Return(false, nil)
	f.repo.On("GetByCnpj", mock.Anything, "11222333000181").Return(nil, nil)
	f.repo.On("GetByCodigo", mock.Anything, "C01").Return(other, nil)

	_, err := f.svc.Cadastrar(context.Background(), request(), "alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrBusinessRule))
	assert.Contains(t, err.Error(), "código")
	assert.Empty(t, f.bus.Names())
}

func TestValidarCodigoUnicoEmptyCode(t *testing.T) {
	f := newFixture(t)

	ok, err := f.svc.ValidarCodigoUnico(context.Background(), "", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	f.repo.AssertNotCalled(t, "GetByCodigo", mock.Anything, mock.Anything)
}

func TestValidarVinculoVarejistaPublishesForActor(t *testing.T) {
	f := newFixture(t)
	l := loja.Rebuild(shared.AuditSnapshot{ID: 3, CreatedBy: "alice", IsActive: true},
		loja.Dados{Cnpj: "11222333000181", Nome: "Centro", IDVarejista: 9})
	f.repo.On("GetByVarejistaID", mock.Anything, int64(9)).Return([]*loja.Loja{l}, nil)

	ok, err := f.svc.ValidarVinculoVarejista(context.Background(), 3, 9)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, f.bus.Events(), 1)
	assert.Equal(t, shared.DefaultActor, f.bus.Events()[0].UserName())

	_, err = f.svc.ValidarVinculoVarejista(context.Background(), 3, 0)
	assert.True(t, errors.Is(err, shared.ErrArgument))
}
