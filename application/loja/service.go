package loja

import (
	"context"

	"go.uber.org/zap"

	"ecommerce/application/common"
	"ecommerce/domain/loja"
	"ecommerce/domain/shared"
	"ecommerce/domain/varejista"
)

const entityName = "loja"

type Service struct {
	repo       loja.Repository
	varejistas varejista.Repository
	uows       shared.UnitOfWorkFactory
	publisher  shared.Publisher
	logger     *zap.Logger
	opts       common.Options
}

func NewService(
	repo loja.Repository,
	varejistas varejista.Repository,
	uows shared.UnitOfWorkFactory,
	publisher shared.Publisher,
	logger *zap.Logger,
	opts ...common.Option,
) (*Service, error) {
	if err := common.RequireDependencies(
		common.Dependency{Name: "repository", Value: repo},
		common.Dependency{Name: "varejistaRepository", Value: varejistas},
		common.Dependency{Name: "unitOfWork", Value: uows},
		common.Dependency{Name: "publisher", Value: publisher},
		common.Dependency{Name: "logger", Value: logger},
	); err != nil {
		return nil, err
	}
	return &Service{
		repo:       repo,
		varejistas: varejistas,
		uows:       uows,
		publisher:  publisher,
		logger:     logger.Named(entityName),
		opts:       common.Apply(opts...),
	}, nil
}

func (s *Service) ValidarCnpjUnico(ctx context.Context, cnpj string, ignorarID *int64) (bool, error) {
	existing, err := s.repo.GetByCnpj(ctx, cnpj)
	if err != nil {
		return false, common.Fail(s.logger, "ValidarCnpjUnico", err)
	}
	return existing == nil || (ignorarID != nil && existing.ID() == *ignorarID), nil
}

// ValidarCodigoUnico treats an empty code as unique.
func (s *Service) ValidarCodigoUnico(ctx context.Context, codigo string, ignorarID *int64) (bool, error) {
	if codigo == "" {
		return true, nil
	}
	existing, err := s.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return false, common.Fail(s.logger, "ValidarCodigoUnico", err)
	}
	return existing == nil || (ignorarID != nil && existing.ID() == *ignorarID), nil
}

// ValidarVinculoVarejista reports whether the store belongs to the retailer.
// A confirmed link publishes a loja event on behalf of the actor in ctx.
func (s *Service) ValidarVinculoVarejista(ctx context.Context, lojaID, varejistaID int64) (bool, error) {
	if err := shared.RequirePositiveID(lojaID, "IdLoja"); err != nil {
		return false, common.Fail(s.logger, "ValidarVinculoVarejista", err)
	}
	if err := shared.RequirePositiveID(varejistaID, "IdVarejista"); err != nil {
		return false, common.Fail(s.logger, "ValidarVinculoVarejista", err)
	}

	fields := []zap.Field{zap.Int64("loja_id", lojaID), zap.Int64("varejista_id", varejistaID)}
	lojas, err := s.repo.GetByVarejistaID(ctx, varejistaID)
	if err != nil {
		return false, common.Fail(s.logger, "ValidarVinculoVarejista", err, fields...)
	}
	for _, l := range lojas {
		if l.ID() != lojaID {
			continue
		}
		event := loja.NewLojaEvent(l.ID(), l.Nome(), l.Cnpj().Value(), l.IDVarejista(), shared.ActorFromContext(ctx))
		if err := s.publisher.Publish(ctx, event); err != nil {
			return false, common.Fail(s.logger, "ValidarVinculoVarejista", err, fields...)
		}
		return true, nil
	}
	return false, nil
}

func (s *Service) Cadastrar(ctx context.Context, req LojaRequest, by string) (*LojaResponse, error) {
	var l *loja.Loja
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		if l, err = loja.New(toDados(req), by); err != nil {
			return err
		}
		if err := s.checkRules(ctx, l, nil); err != nil {
			return err
		}
		if err := s.repo.Add(ctx, l); err != nil {
			return err
		}
		uow.RegisterNew(l)
		return nil
	})
	if err != nil {
		return nil, common.Fail(s.logger, "Cadastrar", err, zap.String("cnpj", req.Cnpj))
	}
	return toLojaResponse(l), nil
}

func (s *Service) Atualizar(ctx context.Context, id int64, req LojaRequest, by string) (*LojaResponse, error) {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return nil, common.Fail(s.logger, "Atualizar", err)
	}

	var l *loja.Loja
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		if l, err = s.repo.GetByID(ctx, id); err != nil {
			return err
		}
		if err := l.AtualizarDados(toDados(req), by); err != nil {
			return err
		}
		if err := s.checkRules(ctx, l, &id); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, l); err != nil {
			return err
		}
		uow.RegisterDirty(l)
		return nil
	})
	if err != nil {
		return nil, common.Fail(s.logger, "Atualizar", err, zap.Int64("id", id))
	}
	return toLojaResponse(l), nil
}

func (s *Service) checkRules(ctx context.Context, l *loja.Loja, ignorarID *int64) error {
	if err := s.opts.CheckCnpj(entityName, l.Cnpj()); err != nil {
		return err
	}
	if l.IDVarejista() > 0 {
		exists, err := s.varejistas.Exists(ctx, l.IDVarejista())
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewNotFoundError("varejista", l.IDVarejista())
		}
	}

	exists, err := s.repo.ExistsByNome(ctx, l.Nome(), l.IDVarejista(), ignorarID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewBusinessRuleError(entityName, "Já existe uma loja com este nome para o varejista")
	}

	unique, err := s.ValidarCnpjUnico(ctx, l.Cnpj().Value(), ignorarID)
	if err != nil {
		return err
	}
	if !unique {
		return shared.NewBusinessRuleError(entityName, "Já existe uma loja com este CNPJ")
	}

	unique, err = s.ValidarCodigoUnico(ctx, l.Codigo(), ignorarID)
	if err != nil {
		return err
	}
	if !unique {
		return shared.NewBusinessRuleError(entityName, "Já existe uma loja com este código")
	}
	return nil
}

func (s *Service) Obter(ctx context.Context, id int64) (*LojaResponse, error) {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return nil, common.Fail(s.logger, "Obter", err)
	}
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, common.Fail(s.logger, "Obter", err, zap.Int64("id", id))
	}
	return toLojaResponse(l), nil
}

func (s *Service) Listar(ctx context.Context) ([]*LojaResponse, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, common.Fail(s.logger, "Listar", err)
	}
	return toLojaResponses(list), nil
}

func (s *Service) ListarPorVarejista(ctx context.Context, varejistaID int64) ([]*LojaResponse, error) {
	if err := shared.RequirePositiveID(varejistaID, "IdVarejista"); err != nil {
		return nil, common.Fail(s.logger, "ListarPorVarejista", err)
	}
	list, err := s.repo.GetByVarejistaID(ctx, varejistaID)
	if err != nil {
		return nil, common.Fail(s.logger, "ListarPorVarejista", err, zap.Int64("varejista_id", varejistaID))
	}
	return toLojaResponses(list), nil
}

func (s *Service) ListarPorLojista(ctx context.Context, lojistaID int64) ([]*LojaResponse, error) {
	if err := shared.RequirePositiveID(lojistaID, "IdLojista"); err != nil {
		return nil, common.Fail(s.logger, "ListarPorLojista", err)
	}
	list, err := s.repo.GetByLojistaID(ctx, lojistaID)
	if err != nil {
		return nil, common.Fail(s.logger, "ListarPorLojista", err, zap.Int64("lojista_id", lojistaID))
	}
	return toLojaResponses(list), nil
}

func (s *Service) Ativar(ctx context.Context, id int64, by string) error {
	return s.setActive(ctx, "Ativar", id, by, (*loja.Loja).Activate)
}

func (s *Service) Desativar(ctx context.Context, id int64, by string) error {
	return s.setActive(ctx, "Desativar", id, by, (*loja.Loja).Deactivate)
}

func (s *Service) setActive(ctx context.Context, op string, id int64, by string, apply func(*loja.Loja, string) error) error {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return common.Fail(s.logger, op, err)
	}
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		l, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(l, by); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, l); err != nil {
			return err
		}
		uow.RegisterDirty(l)
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
