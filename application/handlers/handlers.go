// Package handlers holds the in-process subscribers of the domain events.
// They only log; side effects belong to the services that raise the events.
package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ecommerce/domain/broker"
	"ecommerce/domain/brokervarejista"
	"ecommerce/domain/historico"
	"ecommerce/domain/importacao"
	"ecommerce/domain/loja"
	"ecommerce/domain/shared"
	"ecommerce/domain/usuario"
	"ecommerce/domain/varejista"
)

type subscription struct {
	event   string
	handler shared.EventHandler
}

// Register subscribes every logging handler to bus.
func Register(bus *shared.EventBus, logger *zap.Logger) error {
	if bus == nil || logger == nil {
		return fmt.Errorf("handlers: bus and logger are required")
	}
	logger = logger.Named("events")

	for _, s := range subscriptions(logger) {
		if err := bus.Subscribe(s.event, s.handler); err != nil {
			return fmt.Errorf("handlers: %w", err)
		}
	}
	return nil
}

func subscriptions(logger *zap.Logger) []subscription {
	return []subscription{
		{broker.EventName, shared.Typed("broker-log", func(_ context.Context, e *broker.BrokerEvent) error {
			logger.Info("Broker atualizado",
				zap.Int64("broker_id", e.BrokerID()),
				zap.String("nome", e.Nome()),
				zap.String("user", e.UserName()),
				zap.Time("occurred_on", e.OccurredOn()))
			return nil
		})},
		{brokervarejista.EventName, shared.Typed("broker-varejista-log", func(_ context.Context, e *brokervarejista.BrokerVarejistaEvent) error {
			logger.Info("Broker vinculado ao Varejista",
				zap.Int64("broker_id", e.BrokerID()),
				zap.Int64("varejista_id", e.VarejistaID()),
				zap.String("user", e.UserName()),
				zap.Time("occurred_on", e.OccurredOn()))
			return nil
		})},
		{loja.EventName, shared.Typed("loja-log", func(_ context.Context, e *loja.LojaEvent) error {
			logger.Info("Loja criada",
				zap.Int64("loja_id", e.LojaID()),
				zap.String("nome", e.Nome()),
				zap.String("cnpj", e.Cnpj()),
				zap.Int64("varejista_id", e.VarejistaID()),
				zap.String("user", e.UserName()),
				zap.Time("occurred_on", e.OccurredOn()))
			return nil
		})},
		{usuario.EventName, shared.Typed("usuario-log", func(_ context.Context, e *usuario.UsuarioEvent) error {
			logger.Info("Usuário criado",
				zap.Int64("usuario_id", e.UsuarioID()),
				zap.String("nome", e.Nome()),
				zap.String("email", e.Email()),
				zap.String("user", e.UserName()),
				zap.Time("occurred_on", e.OccurredOn()))
			return nil
		})},
		{varejista.EventName, shared.Typed("varejista-log", func(_ context.Context, e *varejista.VarejistaEvent) error {
			logger.Info("Varejista criado",
				zap.Int64("varejista_id", e.VarejistaID()),
				zap.String("nome", e.Nome()),
				zap.String("cnpj", e.Cnpj()),
				zap.String("user", e.UserName()),
				zap.Time("occurred_on", e.OccurredOn()))
			return nil
		})},
		{historico.EventName, shared.Typed("historicos-log", func(_ context.Context, e *historico.HistoricoEvent) error {
			logger.Info("Históricos atualizado",
				zap.Int64("cod", e.Cod()),
				zap.String("acao", e.Acao()),
				zap.Time("data", e.Data()),
				zap.String("user", e.UserName()))
			return nil
		})},
		{importacao.EventName, shared.Typed("importacao-log", func(_ context.Context, e *importacao.DetalheEvent) error {
			logger.Info("Detalhe de importação registrado",
				zap.Int64("id_detalhe", e.IDDetalhe()),
				zap.String("broker", e.Broker()),
				zap.String("cd_cartao", e.CdCartao()),
				zap.String("cpf_comprador", e.CpfComprador()),
				zap.String("user", e.UserName()),
				zap.Time("occurred_on", e.OccurredOn()))
			return nil
		})},
	}
}
