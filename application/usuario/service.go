package usuario

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"ecommerce/application/common"
	"ecommerce/domain/shared"
	"ecommerce/domain/usuario"
)

const entityName = "usuario"

const msgCredenciaisInvalidas = "Email ou senha inválidos"

type Service struct {
	repo   usuario.Repository
	uows   shared.UnitOfWorkFactory
	logger *zap.Logger
	opts   common.Options
}

func NewService(
	repo usuario.Repository,
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

func (s *Service) Cadastrar(ctx context.Context, req CadastrarRequest, by string) (*UsuarioResponse, error) {
	var u *usuario.Usuario
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		if u, err = usuario.New(toPerfil(req.PerfilRequest), req.Senha, by); err != nil {
			return err
		}
		if err := s.opts.CheckCpf(entityName, u.Cpf()); err != nil {
			return err
		}
		exists, err := s.repo.ExistsByEmail(ctx, u.Email().Value())
		if err != nil {
			return err
		}
		if exists {
			return shared.NewBusinessRuleError(entityName, "Email já cadastrado")
		}
		if err := s.repo.Add(ctx, u); err != nil {
			return err
		}
		uow.RegisterNew(u)
		return nil
	})
	if err != nil {
		return nil, common.Fail(s.logger, "Cadastrar", err, zap.String("email", req.Email))
	}
	return toUsuarioResponse(u), nil
}

func (s *Service) Atualizar(ctx context.Context, id int64, req PerfilRequest, by string) (*UsuarioResponse, error) {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return nil, common.Fail(s.logger, "Atualizar", err)
	}

	var u *usuario.Usuario
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		if u, err = s.repo.GetByID(ctx, id); err != nil {
			return err
		}
		previous := u.Email()
		if err := u.AtualizarPerfil(toPerfil(req), by); err != nil {
			return err
		}
		if err := s.opts.CheckCpf(entityName, u.Cpf()); err != nil {
			return err
		}
		if !u.Email().Equals(previous) {
			exists, err := s.repo.ExistsByEmail(ctx, u.Email().Value())
			if err != nil {
				return err
			}
			if exists {
				return shared.NewBusinessRuleError(entityName, "Email já cadastrado")
			}
		}
		if err := s.repo.Update(ctx, u); err != nil {
			return err
		}
		uow.RegisterDirty(u)
		return nil
	})
	if err != nil {
		return nil, common.Fail(s.logger, "Atualizar", err, zap.Int64("id", id))
	}
	return toUsuarioResponse(u), nil
}

// ValidarAcesso authenticates by email and password. Unknown email, inactive
// account and wrong password all yield the same unauthorized error.
func (s *Service) ValidarAcesso(ctx context.Context, email, senha string) (*UsuarioResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || senha == "" {
		return nil, common.Fail(s.logger, "ValidarAcesso", shared.NewUnauthorizedError(msgCredenciaisInvalidas))
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, common.Fail(s.logger, "ValidarAcesso", err, zap.String("email", email))
	}
	if u == nil || !u.PodeAcessar(senha) {
		return nil, common.Fail(s.logger, "ValidarAcesso",
			shared.NewUnauthorizedError(msgCredenciaisInvalidas), zap.String("email", email))
	}
	return toUsuarioResponse(u), nil
}

// VerificarPermissao reports whether the user belongs to the retailer.
func (s *Service) VerificarPermissao(ctx context.Context, usuarioID, varejistaID int64) (bool, error) {
	if err := shared.RequirePositiveID(usuarioID, "IdUsuario"); err != nil {
		return false, common.Fail(s.logger, "VerificarPermissao", err)
	}
	if err := shared.RequirePositiveID(varejistaID, "IdVarejista"); err != nil {
		return false, common.Fail(s.logger, "VerificarPermissao", err)
	}
	usuarios, err := s.repo.GetByVarejistaID(ctx, varejistaID)
	if err != nil {
		return false, common.Fail(s.logger, "VerificarPermissao", err,
			zap.Int64("usuario_id", usuarioID), zap.Int64("varejista_id", varejistaID))
	}
	for _, u := range usuarios {
		if u.ID() == usuarioID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) AlterarSenha(ctx context.Context, id int64, req AlterarSenhaRequest, by string) error {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return common.Fail(s.logger, "AlterarSenha", err)
	}
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		u, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := u.AlterarSenha(req.SenhaAtual, req.NovaSenha, by); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, u); err != nil {
			return err
		}
		uow.RegisterDirty(u)
		return nil
	})
	return common.Fail(s.logger, "AlterarSenha", err, zap.Int64("id", id))
}

func (s *Service) Obter(ctx context.Context, id int64) (*UsuarioResponse, error) {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return nil, common.Fail(s.logger, "Obter", err)
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, common.Fail(s.logger, "Obter", err, zap.Int64("id", id))
	}
	return toUsuarioResponse(u), nil
}

func (s *Service) ListarAtivos(ctx context.Context) ([]*UsuarioResponse, error) {
	list, err := s.repo.GetAtivos(ctx)
	if err != nil {
		return nil, common.Fail(s.logger, "ListarAtivos", err)
	}
	return toUsuarioResponses(list), nil
}

func (s *Service) ListarPorVarejista(ctx context.Context, varejistaID int64) ([]*UsuarioResponse, error) {
	if err := shared.RequirePositiveID(varejistaID, "IdVarejista"); err != nil {
		return nil, common.Fail(s.logger, "ListarPorVarejista", err)
	}
	list, err := s.repo.GetByVarejistaID(ctx, varejistaID)
	if err != nil {
		return nil, common.Fail(s.logger, "ListarPorVarejista", err, zap.Int64("varejista_id", varejistaID))
	}
	return toUsuarioResponses(list), nil
}

func (s *Service) Ativar(ctx context.Context, id int64, by string) error {
	return s.setActive(ctx, "Ativar", id, by, (*usuario.Usuario).Activate)
}

func (s *Service) Desativar(ctx context.Context, id int64, by string) error {
	return s.setActive(ctx, "Desativar", id, by, (*usuario.Usuario).Deactivate)
}

func (s *Service) setActive(ctx context.Context, op string, id int64, by string, apply func(*usuario.Usuario, string) error) error {
	if err := shared.RequirePositiveID(id, "Id"); err != nil {
		return common.Fail(s.logger, op, err)
	}
	uow := s.uows.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		u, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(u, by); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, u); err != nil {
			return err
		}
		uow.RegisterDirty(u)
		return nil
	})
	return common.Fail(s.logger, op, err, zap.Int64("id", id))
}
