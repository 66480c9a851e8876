// Package brokervarejista manages the broker-to-retailer links.
package brokervarejista

import (
	"context"

	"go.uber.org/zap"

	"ecommerce/application/common"
	"ecommerce/domain/broker"
	"ecommerce/domain/brokervarejista"
	"ecommerce/domain/shared"
	"ecommerce/domain/varejista"
)

const entityName = "broker_varejista"

type Service struct {
	repo       brokervarejista.Repository
	brokers    broker.Repository
	varejistas varejista.Repository
	uows       shared.UnitOfWorkFactory
	logger     *zap.Logger
}

func NewService(
	repo brokervarejista.Repository,
	brokers broker.Repository,
	varejistas varejista.Repository,
	uows shared.UnitOfWorkFactory,
	logger *zap.Logger,
) (*Service, error) {
	if err := common.RequireDependencies(
		common.Dependency{Name: "repository", Value: repo},
		common.Dependency{Name: "brokerRepository", Value: brokers},
		common.Dependency{Name: "varejistaRepository", Value: varejistas},
		common.Dependency{Name: "unitOfWork", Value: uows},
		common.Dependency{Name: "logger", Value: logger},
	); err != nil {
		return nil, err
	}
	return &Service{
		repo:       repo,
		brokers:    brokers,
		varejistas: varejistas,
		uows:       uows,
		logger:     logger.Named(entityName),
	}, nil
}

func requireIDs(brokerID, varejistaID int64) error {
	if err := shared.RequirePositiveID(brokerID, "IdBroker"); err != nil {
		return err
	}
	return shared.RequirePositiveID(varejistaID, "IdVarejista")
}

func (s *Service) ValidarVinculoExistente(ctx context.Context, brokerID, varejistaID int64) (bool, error) {
	if err := requireIDs(brokerID, varejistaID); err != nil {
		return false, common.Fail(s.logger, "ValidarVinculoExistente", err)
	}
	exists, err := s.repo.ExistsRelacionamento(ctx, brokerID, varejistaID)
	if err != nil {
		return false, common.Fail(s.logger, "ValidarVinculoExistente", err,
			zap.Int64("broker_id", brokerID), zap.Int64("varejista_id", varejistaID))
	}
	return exists, nil
}

// ValidarEntidadesExistem fails with NotFound naming the first missing side.
func (s *Service) ValidarEntidadesExistem(ctx context.Context, brokerID, varejistaID int64) error {
	if err := requireIDs(brokerID, varejistaID); err != nil {
		return common.Fail(s.logger, "ValidarEntidadesExistem", err)
	}
	return common.Fail(s.logger, "ValidarEntidadesExistem", s.entidadesExistem(ctx, brokerID, varejistaID),
		zap.Int64("broker_id", brokerID), zap.Int64("varejista_id", varejistaID))
}

func (s *Service) entidadesExistem(ctx context.Context, brokerID, varejistaID int64) error {
	exists, err := s.brokers.Exists(ctx, brokerID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewNotFoundError("broker", brokerID)
	}
	exists, err = s.varejistas.Exists(ctx, varejistaID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewNotFoundError("varejista", varejistaID)
	}
	return nil
}

func (s *Service) Vincular(ctx context.Context, req VincularRequest, by string) (*VinculoResponse, error) {
	if err := requireIDs(req.IDBroker, req.IDVarejista); err != nil {
		return nil, common.Fail(s.logger, "Vincular", err)
	}

	var bv *brokervarejista.BrokerVarejista
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		if bv, err = brokervarejista.New(req.IDBroker, req.IDVarejista, by); err != nil {
			return err
		}
		if err := s.entidadesExistem(ctx, req.IDBroker, req.IDVarejista); err != nil {
			return err
		}
		exists, err := s.repo.ExistsRelacionamento(ctx, req.IDBroker, req.IDVarejista)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewConflictError(entityName, "Broker já vinculado a este varejista")
		}
		if err := s.repo.Add(ctx, bv); err != nil {
			return err
		}
		uow.RegisterNew(bv)
		return nil
	})
	if err != nil {
		return nil, common.Fail(s.logger, "Vincular", err,
			zap.Int64("broker_id", req.IDBroker), zap.Int64("varejista_id", req.IDVarejista))
	}
	return toVinculoResponse(bv), nil
}

// Desvincular hard-deletes the link.
func (s *Service) Desvincular(ctx context.Context, id int64, by string) error {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return common.Fail(s.logger, "Desvincular", err)
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
	if err != nil {
		return common.Fail(s.logger, "Desvincular", err, zap.Int64("id", id))
	}
	s.logger.Info("vínculo removido", zap.Int64("id", id), zap.String("by", by))
	return nil
}

func (s *Service) ListarPorBroker(ctx context.Context, brokerID int64) ([]*VinculoResponse, error) {
	if err := shared.RequirePositiveID(brokerID, "IdBroker"); err != nil {
		return nil, common.Fail(s.logger, "ListarPorBroker", err)
	}
	list, err := s.repo.GetByBrokerID(ctx, brokerID)
	if err != nil {
		return nil, common.Fail(s.logger, "ListarPorBroker", err, zap.Int64("broker_id", brokerID))
	}
	return toVinculoResponses(list), nil
}

func (s *Service) ListarPorVarejista(ctx context.Context, varejistaID int64) ([]*VinculoResponse, error) {
	if err := shared.RequirePositiveID(varejistaID, "IdVarejista"); err != nil {
		return nil, common.Fail(s.logger, "ListarPorVarejista", err)
	}
	list, err := s.repo.GetByVarejistaID(ctx, varejistaID)
	if err != nil {
		return nil, common.Fail(s.logger, "ListarPorVarejista", err, zap.Int64("varejista_id", varejistaID))
	}
	return toVinculoResponses(list), nil
}
