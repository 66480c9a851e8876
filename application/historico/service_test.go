package historico

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"ecommerce/domain/historico"
	"ecommerce/domain/shared"
	"ecommerce/infrastructure/persistence/mocks"
)

func newService(t *testing.T) (*Service, *mocks.HistoricoRepository, *mocks.EventPublisher) {
	t.Helper()
	repo := new(mocks.HistoricoRepository)
	bus := mocks.NewEventPublisher()
	svc, err := NewService(repo, mocks.NewUnitOfWorkFactory(bus), bus, zaptest.NewLogger(t))
	require.NoError(t, err)
	return svc, repo, bus
}

func TestRegistrar(t *testing.T) {
	svc, repo, bus := newService(t)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*historico.Historico")).Return(nil)

	resp, err := svc.Registrar(context.Background(), RegistrarRequest{Acao: "u", Detalhe: "Nome alterado", Tabela: "Brokers"}, "alice")
	require.NoError(t, err)
	assert.Equal(t, "U", resp.Acao)
	assert.Equal(t, []string{historico.EventName}, bus.Names())
}

func TestRegistrarRejectsUnknownAction(t *testing.T) {
	svc, repo, _ := newService(t)

	_, err := svc.Registrar(context.Background(), RegistrarRequest{Acao: "X", Detalhe: "?"}, "alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrValidation))
	assert.Contains(t, err.Error(), "I, U ou D")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPublicarEvento(t *testing.T) {
	svc, repo, bus := newService(t)
	h := historico.Rebuild(shared.AuditSnapshot{ID: 5, CreatedBy: "alice"}, time.Now(),
		historico.Dados{Acao: "D", Detalhe: "Loja removida"})
	repo.On("GetByID", mock.Anything, int64(5)).Return(h, nil)

	ctx := shared.ContextWithActor(context.Background(), "bob")
	require.NoError(t, svc.PublicarEvento(ctx, 5, ""))
	require.Len(t, bus.Events(), 1)
	assert.Equal(t, "bob", bus.Events()[0].UserName())
	assert.Equal(t, "5", bus.Events()[0].GetAggregateID())

	err := svc.PublicarEvento(ctx, 0, "bob")
	assert.True(t, errors.Is(err, shared.ErrArgument))
}
