package varejista

import (
	"context"

	"go.uber.org/zap"

	"ecommerce/application/common"
	"ecommerce/domain/shared"
	"ecommerce/domain/varejista"
)

const entityName = "varejista"

type Service struct {
	repo   varejista.Repository
	uows   shared.UnitOfWorkFactory
	logger *zap.Logger
	opts   common.Options
}

func NewService(
	repo varejista.Repository,
	uows shared.UnitOfWorkFactory,
	logger *zap.Logger,
	opts ...common.Option,
) (*Service, error) {
	if err := common.RequireDependencies(
		common.Dependency{Name: "repository", Value: repo},
		common.Dependency{Name: "unitOfWork", Value: uows},
		common.Dependency{Name: "logger", Value: logger},
	); err != nil {
		return nil, err
	}
	return &Service{
		repo:   repo,
		uows:   uows,
		logger: logger.Named(entityName),
		opts:   common.Apply(opts...),
	}, nil
}

// ValidarCnpjUnico is true when no other retailer uses cnpj. ignorarID
// excludes the retailer being edited.
func (s *Service) ValidarCnpjUnico(ctx context.Context, cnpj string, ignorarID *int64) (bool, error) {
	existing, err := s.repo.GetByCnpj(ctx, cnpj)
	if err != nil {
		return false, common.Fail(s.logger, "ValidarCnpjUnico", err)
	}
	return existing == nil || (ignorarID != nil && existing.ID() == *ignorarID), nil
}

func (s *Service) Cadastrar(ctx context.Context, req VarejistaRequest, by string) (*VarejistaResponse, error) {
	var v *varejista.Varejista
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		if v, err = varejista.New(toDados(req), by); err != nil {
			return err
		}
		if err := s.checkUnique(ctx, v, nil); err != nil {
			return err
		}
		if err := s.repo.Add(ctx, v); err != nil {
			return err
		}
		uow.RegisterNew(v)
		return nil
	})
	if err != nil {
		return nil, common.Fail(s.logger, "Cadastrar", err, zap.String("cnpj", req.Cnpj))
	}
	return toVarejistaResponse(v), nil
}

func (s *Service) Atualizar(ctx context.Context, id int64, req VarejistaRequest, by string) (*VarejistaResponse, error) {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return nil, common.Fail(s.logger, "Atualizar", err)
	}

	var v *varejista.Varejista
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		if v, err = s.repo.GetByID(ctx, id); err != nil {
			return err
		}
		if err := v.AtualizarDados(toDados(req), by); err != nil {
			return err
		}
		if err := s.checkUnique(ctx, v, &id); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, v); err != nil {
			return err
		}
		uow.RegisterDirty(v)
		return nil
	})
	if err != nil {
		return nil, common.Fail(s.logger, "Atualizar", err, zap.Int64("id", id))
	}
	return toVarejistaResponse(v), nil
}

func (s *Service) checkUnique(ctx context.Context, v *varejista.Varejista, ignorarID *int64) error {
	if err := s.opts.CheckCnpj(entityName, v.Cnpj()); err != nil {
		return err
	}
	exists, err := s.repo.ExistsByNome(ctx, v.Nome(), ignorarID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewBusinessRuleError(entityName, "Já existe um varejista com este nome")
	}
	unique, err := s.ValidarCnpjUnico(ctx, v.Cnpj().Value(), ignorarID)
	if err != nil {
		return err
	}
	if !unique {
		return shared.NewBusinessRuleError(entityName, "Já existe um varejista com este CNPJ")
	}
	return nil
}

func (s *Service) Obter(ctx context.Context, id int64) (*VarejistaResponse, error) {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return nil, common.Fail(s.logger, "Obter", err)
	}
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, common.Fail(s.logger, "Obter", err, zap.Int64("id", id))
	}
	return toVarejistaResponse(v), nil
}

// ObterPorCnpj returns NotFound when no retailer has the CNPJ.
func (s *Service) ObterPorCnpj(ctx context.Context, cnpj string) (*VarejistaResponse, error) {
	v, err := s.repo.GetByCnpj(ctx, cnpj)
	if err == nil && v == nil {
		err = shared.NewNotFoundError(entityName, cnpj)
	}
	if err != nil {
		return nil, common.Fail(s.logger, "ObterPorCnpj", err, zap.String("cnpj", cnpj))
	}
	return toVarejistaResponse(v), nil
}

func (s *Service) Listar(ctx context.Context) ([]*VarejistaResponse, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, common.Fail(s.logger, "Listar", err)
	}
	return toVarejistaResponses(list), nil
}

func (s *Service) ListarPorBroker(ctx context.Context, brokerID int64) ([]*VarejistaResponse, error) {
	if err := shared.RequirePositiveID(brokerID, "IdBroker"); err != nil {
		return nil, common.Fail(s.logger, "ListarPorBroker", err)
	}
	list, err := s.repo.GetByBrokerID(ctx, brokerID)
	if err != nil {
		return nil, common.Fail(s.logger, "ListarPorBroker", err, zap.Int64("broker_id", brokerID))
	}
	return toVarejistaResponses(list), nil
}

func (s *Service) Ativar(ctx context.Context, id int64, by string) error {
	return s.setActive(ctx, "Ativar", id, by, (*varejista.Varejista).Activate)
}

func (s *Service) Desativar(ctx context.Context, id int64, by string) error {
	return s.setActive(ctx, "Desativar", id, by, (*varejista.Varejista).Deactivate)
}

func (s *Service) setActive(ctx context.Context, op string, id int64, by string, apply func(*varejista.Varejista, string) error) error {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return common.Fail(s.logger, op, err)
	}
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		v, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(v, by); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, v); err != nil {
			return err
		}
		uow.RegisterDirty(v)
		return nil
	})
	return common.Fail(s.logger, op, err, zap.Int64("id", id))
}

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
