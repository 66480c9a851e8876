/*
Package broker orchestrates the broker use cases.

Writes run inside a unit of work: the aggregate's events are stored in the
outbox and dispatched to the in-process bus before the transaction commits.
Reads go straight to the repository.
*/
package broker

import (
	"context"

	"go.uber.org/zap"

	"ecommerce/application/common"
	"ecommerce/domain/broker"
	"ecommerce/domain/shared"
)

const entityName = "broker"

type Service struct {
	repo      broker.Repository
	uows      shared.UnitOfWorkFactory
	publisher shared.Publisher
	logger    *zap.Logger
}

func NewService(
	repo broker.Repository,
	uows shared.UnitOfWorkFactory,
	publisher shared.Publisher,
	logger *zap.Logger,
) (*Service, error) {
	if err := common.RequireDependencies(
		common.Dependency{Name: "repository", Value: repo},
		common.Dependency{Name: "unitOfWork", Value: uows},
		common.Dependency{Name: "publisher", Value: publisher},
		common.Dependency{Name: "logger", Value: logger},
	); err != nil {
		return nil, err
	}
	return &Service{repo: repo, uows: uows, publisher: publisher, logger: logger.Named(entityName)}, nil
}

func (s *Service) Cadastrar(ctx context.Context, req BrokerRequest, by string) (*BrokerResponse, error) {
	var b *broker.Broker
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		b, err = broker.New(req.Nome, by)
		if err != nil {
			return err
		}
		exists, err := s.repo.ExistsByNome(ctx, b.Nome(), nil)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewBusinessRuleError(entityName, "Já existe um broker com este nome")
		}
		if err := s.repo.Add(ctx, b); err != nil {
			return err
		}
		uow.RegisterNew(b)
		return nil
	})
	if err != nil {
		return nil, common.Fail(s.logger, "Cadastrar", err, zap.String("nome", req.Nome))
	}
	return toBrokerResponse(b), nil
}

func (s *Service) Atualizar(ctx context.Context, id int64, req BrokerRequest, by string) (*BrokerResponse, error) {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return nil, common.Fail(s.logger, "Atualizar", err)
	}

	var b *broker.Broker
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		if b, err = s.repo.GetByID(ctx, id); err != nil {
			return err
		}
		if err := b.AtualizarDados(req.Nome, by); err != nil {
			return err
		}
		exists, err := s.repo.ExistsByNome(ctx, b.Nome(), &id)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewBusinessRuleError(entityName, "Já existe um broker com este nome")
		}
		if err := s.repo.Update(ctx, b); err != nil {
			return err
		}
		uow.RegisterDirty(b)
		return nil
	})
	if err != nil {
		return nil, common.Fail(s.logger, "Atualizar", err, zap.Int64("id", id))
	}
	return toBrokerResponse(b), nil
}

func (s *Service) Obter(ctx context.Context, id int64) (*BrokerResponse, error) {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return nil, common.Fail(s.logger, "Obter", err)
	}
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, common.Fail(s.logger, "Obter", err, zap.Int64("id", id))
	}
	return toBrokerResponse(b), nil
}

func (s *Service) Listar(ctx context.Context) ([]*BrokerResponse, error) {
	brokers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, common.Fail(s.logger, "Listar", err)
	}
	return toBrokerResponses(brokers), nil
}

// ListarValidos returns the named, active brokers.
func (s *Service) ListarValidos(ctx context.Context) ([]*BrokerResponse, error) {
	brokers, err := s.repo.FindBySpecification(ctx, broker.NewValidBrokerSpecification())
	if err != nil {
		return nil, common.Fail(s.logger, "ListarValidos", err)
	}
	return toBrokerResponses(brokers), nil
}

func (s *Service) Ativar(ctx context.Context, id int64, by string) error {
	return s.setActive(ctx, "Ativar", id, by, (*broker.Broker).Activate)
}

func (s *Service) Desativar(ctx context.Context, id int64, by string) error {
	return s.setActive(ctx, "Desativar", id, by, (*broker.Broker).Deactivate)
}

func (s *Service) setActive(ctx context.Context, op string, id int64, by string, apply func(*broker.Broker, string) error) error {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return common.Fail(s.logger, op, err)
	}
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		b, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(b, by); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, b); err != nil {
			return err
		}
		uow.RegisterDirty(b)
		return nil
	})
	return common.Fail(s.logger, op, err, zap.Int64("id", id))
}

// Remover hard-deletes the broker.
func (s *Service) Remover(ctx context.Context, id int64) error {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return common.Fail(s.logger, "Remover", err)
	}
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewNotFoundError(entityName, id)
		}
		return s.repo.Delete(ctx, id)
	})
	return common.Fail(s.logger, "Remover", err, zap.Int64("id", id))
}

// ValidarVinculoVarejista reports whether the broker is linked to the
// retailer. A confirmed link publishes a broker event on behalf of the actor
// in ctx.
func (s *Service) ValidarVinculoVarejista(ctx context.Context, brokerID, varejistaID int64) (bool, error) {
	if err := shared.RequirePositiveID(brokerID, "IdBroker"); err != nil {
		return false, common.Fail(s.logger, "ValidarVinculoVarejista", err)
	}
	if err := shared.RequirePositiveID(varejistaID, "IdVarejista"); err != nil {
		return false, common.Fail(s.logger, "ValidarVinculoVarejista", err)
	}

	brokers, err := s.repo.GetByVarejistaID(ctx, varejistaID)
	if err != nil {
		return false, common.Fail(s.logger, "ValidarVinculoVarejista", err,
			zap.Int64("broker_id", brokerID), zap.Int64("varejista_id", varejistaID))
	}
	for _, b := range brokers {
		if b.ID() != brokerID {
			continue
		}
		event := broker.NewBrokerEvent(b.ID(), b.Nome(), shared.ActorFromContext(ctx))
		if err := s.publisher.Publish(ctx, event); err != nil {
			return false, common.Fail(s.logger, "ValidarVinculoVarejista", err,
				zap.Int64("broker_id", brokerID), zap.Int64("varejista_id", varejistaID))
		}
		return true, nil
	}
	return false, nil
}
