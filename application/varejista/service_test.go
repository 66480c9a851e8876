package varejista

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ecommerce/application/common"
	"ecommerce/domain/shared"
	"ecommerce/domain/varejista"
	"ecommerce/infrastructure/persistence/mocks"
)

func newService(t *testing.T, opts ...common.Option) (*Service, *mocks.VarejistaRepository, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	repo := new(mocks.VarejistaRepository)
	svc, err := NewService(repo, mocks.NewUnitOfWorkFactory(nil), zap.New(core), opts...)
	require.NoError(t, err)
	return svc, repo, logs
}

func TestCadastrar(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	repo.On("ExistsByNome", mock.Anything, "Azul", mock.Anything).Return(false, nil)
	repo.On("GetByCnpj", mock.Anything, "11222333000181").Return(nil, nil)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*varejista.Varejista")).
		Run(func(args mock.Arguments) { args.Get(1).(*varejista.Varejista).AssignID(12) }).
		Return(nil)

	resp, err := svc.Cadastrar(ctx, VarejistaRequest{Cnpj: "11.222.333/0001-81", Nome: "Azul"}, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, "11222333000181", resp.Cnpj)
	repo.AssertExpectations(t)
}

func TestCadastrarRejectsDuplicateCnpj(t *testing.T) {
	svc, repo, logs := newService(t)
	ctx := context.Background()

	existing := varejista.Rebuild(shared.AuditSnapshot{ID: 5, CreatedBy: "bob", IsActive: true},
		varejista.Dados{Cnpj: "11222333000181", Nome: "Outro"})
	repo.On("ExistsByNome", mock.Anything, "Azul", mock.Anything).Return(false, nil)
	repo.On("GetByCnpj", mock.Anything, "11222333000181").Return(existing, nil)

	_, err := svc.Cadastrar(ctx, VarejistaRequest{Cnpj: "11222333000181", Nome: "Azul"}, "alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrBusinessRule))
	assert.Contains(t, err.Error(), "CNPJ")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)

	entries := logs.FilterMessage("operação rejeitada").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Cadastrar", entries[0].ContextMap()["operation"])
}

func TestCadastrarStrictDocuments(t *testing.T) {
	svc, repo, _ := newService(t, common.WithStrictDocuments(true))

	_, err := svc.Cadastrar(context.Background(), VarejistaRequest{Cnpj: "11222333000100", Nome: "Azul"}, "alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrValidation))
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestValidarCnpjUnicoIgnoresSelf(t *testing.T) {
	svc, repo, _ := newService(t)
	existing := varejista.Rebuild(shared.AuditSnapshot{ID: 5, CreatedBy: "bob"},
		varejista.Dados{Cnpj: "11222333000181", Nome: "Azul"})
	repo.On("GetByCnpj", mock.Anything, "11222333000181").Return(existing, nil)

	self := int64(5)
	ok, err := svc.ValidarCnpjUnico(context.Background(), "11222333000181", &self)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ValidarCnpjUnico(context.Background(), "11222333000181", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestObterPorCnpjNotFound(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.On("GetByCnpj", mock.Anything, "11222333000181").Return(nil, nil)

	_, err := svc.ObterPorCnpj(context.Background(), "11222333000181")
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(nil, mocks.NewUnitOfWorkFactory(nil), zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrArgument))
	assert.Contains(t, err.Error(), "repository")
}
