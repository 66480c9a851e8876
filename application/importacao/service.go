// Package importacao validates and stores retail import lines
// (LogImportacaoVarejoDetalhe), one at a time or as a batch.
package importacao

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ecommerce/application/common"
	"ecommerce/domain/importacao"
	"ecommerce/domain/loja"
	"ecommerce/domain/shared"
	"ecommerce/domain/varejista"
)

const entityName = "log_importacao_varejo_detalhe"

type Service struct {
	repo       importacao.Repository
	lojas      loja.Repository
	varejistas varejista.Repository
	uows       shared.UnitOfWorkFactory
	logger     *zap.Logger
	opts       common.Options
	now        func() time.Time
}

func NewService(
	repo importacao.Repository,
	lojas loja.Repository,
	varejistas varejista.Repository,
	uows shared.UnitOfWorkFactory,
	logger *zap.Logger,
	opts ...common.Option,
) (*Service, error) {
	if err := common.RequireDependencies(
		common.Dependency{Name: "repository", Value: repo},
		common.Dependency{Name: "lojaRepository", Value: lojas},
		common.Dependency{Name: "varejistaRepository", Value: varejistas},
		common.Dependency{Name: "unitOfWork", Value: uows},
		common.Dependency{Name: "logger", Value: logger},
	); err != nil {
		return nil, err
	}
	return &Service{
		repo:       repo,
		lojas:      lojas,
		varejistas: varejistas,
		uows:       uows,
		logger:     logger.Named("importacao"),
		opts:       common.Apply(opts...),
		now:        time.Now,
	}, nil
}

// ValidarDadosImportacao is true when the retailer exists and owns the store
// with the given CNPJ.
func (s *Service) ValidarDadosImportacao(ctx context.Context, cnpjLoja string, varejistaID int64) (bool, error) {
	if err := shared.RequirePositiveID(varejistaID, "IdVarejista"); err != nil {
		return false, common.Fail(s.logger, "ValidarDadosImportacao", err)
	}
	fields := []zap.Field{zap.String("cnpj_loja", cnpjLoja), zap.Int64("varejista_id", varejistaID)}

	exists, err := s.varejistas.Exists(ctx, varejistaID)
	if err != nil {
		return false, common.Fail(s.logger, "ValidarDadosImportacao", err, fields...)
	}
	if !exists {
		return false, nil
	}
	l, err := s.lojas.GetByCnpj(ctx, cnpjLoja)
	if err != nil {
		return false, common.Fail(s.logger, "ValidarDadosImportacao", err, fields...)
	}
	return l != nil && l.IDVarejista() == varejistaID, nil
}

// ValidarPermissaoImportacao is true when the store is one of the retailer's.
func (s *Service) ValidarPermissaoImportacao(ctx context.Context, lojaID, varejistaID int64) (bool, error) {
	if err := shared.RequirePositiveID(lojaID, "IdLoja"); err != nil {
		return false, common.Fail(s.logger, "ValidarPermissaoImportacao", err)
	}
	if err := shared.RequirePositiveID(varejistaID, "IdVarejista"); err != nil {
		return false, common.Fail(s.logger, "ValidarPermissaoImportacao", err)
	}
	lojas, err := s.lojas.GetByVarejistaID(ctx, varejistaID)
	if err != nil {
		return false, common.Fail(s.logger, "ValidarPermissaoImportacao", err,
			zap.Int64("loja_id", lojaID), zap.Int64("varejista_id", varejistaID))
	}
	for _, l := range lojas {
		if l.ID() == lojaID {
			return true, nil
		}
	}
	return false, nil
}

// ValidarCpf applies the configured document policy to a buyer's CPF.
func (s *Service) ValidarCpf(cpf string) bool {
	c, err := shared.NewCpf(cpf)
	if err != nil {
		return false
	}
	return s.opts.CheckCpf(entityName, c) == nil
}

func (s *Service) RegistrarDetalhe(ctx context.Context, req DetalheRequest, by string) (*DetalheResponse, error) {
	var d *importacao.Detalhe
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		if d, err = importacao.New(toDados(req), by); err != nil {
			return err
		}
		if err := s.opts.CheckCpf(entityName, d.CpfComprador()); err != nil {
			return err
		}
		if err := s.repo.Add(ctx, d); err != nil {
			return err
		}
		uow.RegisterNew(d)
		return nil
	})
	if err != nil {
		return nil, common.Fail(s.logger, "RegistrarDetalhe", err, zap.Int64("id_log", req.IDLog))
	}
	return toDetalheResponse(d), nil
}

// ImportarLote validates every line on its own and stores the valid ones in
// a single unit of work. Rejected lines are reported, not returned as an
// error; an error means nothing was stored.
func (s *Service) ImportarLote(ctx context.Context, batch Batch, by string) (*ImportReport, error) {
	report := &ImportReport{Total: len(batch.Detalhes)}
	if s.opts.BatchSize > 0 && report.Total > s.opts.BatchSize {
		err := shared.NewArgumentError("detalhes",
			fmt.Sprintf("Lote excede o limite de %d linhas", s.opts.BatchSize))
		return nil, common.Fail(s.logger, "ImportarLote", err, zap.Int("total", report.Total))
	}

	now := s.now()
	valid := make([]importacao.Dados, 0, len(batch.Detalhes))
	for i, req := range batch.Detalhes {
		if req.IDLog == 0 {
			req.IDLog = batch.IDLog
		}
		dados := toDados(req)
		cpf, result := importacao.Validate(dados, now)
		violations := result.Violations()
		if result.IsValid() {
			if err := s.opts.CheckCpf(entityName, cpf); err != nil {
				violations = append(violations, shared.Violation{Field: "CPF", Code: shared.CodeCPF, Message: "CPF inválido"})
			}
		}
		if len(violations) > 0 {
			report.Rejeicoes = append(report.Rejeicoes, LinhaRejeitada{Linha: i + 1, Violations: violations})
			continue
		}
		valid = append(valid, dados)
	}
	report.Rejeitados = len(report.Rejeicoes)

	if len(valid) > 0 {
		uow := s.uows.New()
		var ids []int64
		err := uow.Execute(ctx, func(ctx context.Context) error {
			ids = ids[:0]
			for _, dados := range valid {
				d, err := importacao.New(dados, by)
				if err != nil {
					return err
				}
				if err := s.repo.Add(ctx, d); err != nil {
					return err
				}
				uow.RegisterNew(d)
				ids = append(ids, d.ID())
			}
			return nil
		})
		if err != nil {
			return nil, common.Fail(s.logger, "ImportarLote", err,
				zap.Int64("id_log", batch.IDLog), zap.Int("validos", len(valid)))
		}
		report.IDs = ids
		report.Importados = len(ids)
	}

	s.logger.Info("lote importado",
		zap.Int64("id_log", batch.IDLog),
		zap.Int("total", report.Total),
		zap.Int("importados", report.Importados),
		zap.Int("rejeitados", report.Rejeitados),
	)
	return report, nil
}

func (s *Service) Obter(ctx context.Context, id int64) (*DetalheResponse, error) {
	if err := shared.RequirePositiveID(id, "IdDetalhe"); err != nil {
		return nil, common.Fail(s.logger, "Obter", err)
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, common.Fail(s.logger, "Obter", err, zap.Int64("id", id))
	}
	return toDetalheResponse(d), nil
}

func (s *Service) ListarPorLog(ctx context.Context, idLog int64) ([]*DetalheResponse, error) {
	if err := shared.RequirePositiveID(idLog, "IdLog"); err != nil {
		return nil, common.Fail(s.logger, "ListarPorLog", err)
	}
	list, err := s.repo.GetByLogID(ctx, idLog)
	if err != nil {
		return nil, common.Fail(s.logger, "ListarPorLog", err, zap.Int64("id_log", idLog))
	}
	return toDetalheResponses(list), nil
}
