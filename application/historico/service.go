// Package historico records and queries the audit trail.
package historico

import (
	"context"

	"go.uber.org/zap"

	"ecommerce/application/common"
	"ecommerce/domain/historico"
	"ecommerce/domain/shared"
)

const entityName = "historicos"

type Service struct {
	repo      historico.Repository
	uows      shared.UnitOfWorkFactory
	publisher shared.Publisher
	logger    *zap.Logger
}

func NewService(
	repo historico.Repository,
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

func (s *Service) Registrar(ctx context.Context, req RegistrarRequest, by string) (*HistoricoResponse, error) {
	var h *historico.Historico
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		if h, err = historico.New(toDados(req), by); err != nil {
			return err
		}
		if err := s.repo.Add(ctx, h); err != nil {
			return err
		}
		uow.RegisterNew(h)
		return nil
	})
	if err != nil {
		return nil, common.Fail(s.logger, "Registrar", err, zap.String("tabela", req.Tabela))
	}
	return toHistoricoResponse(h), nil
}

// PublicarEvento re-announces a stored entry on behalf of by.
func (s *Service) PublicarEvento(ctx context.Context, cod int64, by string) error {
	if err := shared.RequirePositiveID(cod, "Historicos_Cod"); err != nil {
		return common.Fail(s.logger, "PublicarEvento", err)
	}
	h, err := s.repo.GetByID(ctx, cod)
	if err != nil {
		return common.Fail(s.logger, "PublicarEvento", err, zap.Int64("cod", cod))
	}
	if by == "" {
		by = shared.ActorFromContext(ctx)
	}
	event := historico.NewHistoricoEvent(h.ID(), h.Acao().Value(), h.Data(), by)
	return common.Fail(s.logger, "PublicarEvento", s.publisher.Publish(ctx, event), zap.Int64("cod", cod))
}

func (s *Service) ListarPorUsuario(ctx context.Context, usuarioCod int64) ([]*HistoricoResponse, error) {
	if err := shared.RequirePositiveID(usuarioCod, "Usuarios_Cod"); err != nil {
		return nil, common.Fail(s.logger, "ListarPorUsuario", err)
	}
	list, err := s.repo.GetByUsuarioCod(ctx, usuarioCod)
	if err != nil {
		return nil, common.Fail(s.logger, "ListarPorUsuario", err, zap.Int64("usuario_cod", usuarioCod))
	}
	return toHistoricoResponses(list), nil
}

func (s *Service) ListarPorEmpresa(ctx context.Context, idEmpresa int64) ([]*HistoricoResponse, error) {
	if err := shared.RequirePositiveID(idEmpresa, "IdEmpresa"); err != nil {
		return nil, common.Fail(s.logger, "ListarPorEmpresa", err)
	}
	list, err := s.repo.GetByEmpresaID(ctx, idEmpresa)
	if err != nil {
		return nil, common.Fail(s.logger, "ListarPorEmpresa", err, zap.Int64("id_empresa", idEmpresa))
	}
	return toHistoricoResponses(list), nil
}
