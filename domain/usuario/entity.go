package usuario

import (
	"strings"
	"time"

	"ecommerce/domain/shared"
)

const (
	entityName           = "usuario"
	DefaultEmpresaPadrao = 1
)

// Perfil holds everything but the password.
type Perfil struct {
	Nome          string
	Email         string
	Cpf           string
	IDBroker      int64
	IDLoja        int64
	IDVarejista   int64
	EmpresaPadrao int
	VisAutcom     bool
	VisAutemp     bool
}

func (p Perfil) normalized() Perfil {
	p.Nome = strings.TrimSpace(p.Nome)
	p.Email = strings.TrimSpace(p.Email)
	p.Cpf = strings.TrimSpace(p.Cpf)
	if p.EmpresaPadrao == 0 {
		p.EmpresaPadrao = DefaultEmpresaPadrao
	}
	return p
}

// Usuario is a back-office user, tied to a broker, store or retailer by id.
type Usuario struct {
	shared.Audit
	shared.EventRecorder

	nome          string
	email         shared.Email
	cpf           shared.Cpf
	senha         shared.Senha
	senhaAnterior shared.Senha
	idBroker      int64
	idLoja        int64
	idVarejista   int64
	empresaPadrao int
	visAutcom     bool
	visAutemp     bool
}

type validated struct {
	email shared.Email
	cpf   shared.Cpf
}

func New(p Perfil, senha, createdBy string) (*Usuario, error) {
	p = p.normalized()
	audit := shared.NewAudit(createdBy, time.Now())
	vals, result := validate(p)
	senhaResult := shared.NewValidator().Required(senha, "Senha").MaxLength(senha, 200, "Senha").Result()
	if err := shared.Combine(result, senhaResult, shared.ValidateAudit(audit)).Err(entityName); err != nil {
		return nil, err
	}
	hash, err := shared.NewSenha(senha)
	if err != nil {
		return nil, err
	}

	u := &Usuario{Audit: audit, senha: hash}
	u.apply(p, vals)
	u.Record(NewUsuarioEvent(u.ID(), u.nome, u.email.Value(), u.CreatedBy()))
	return u, nil
}

func validate(p Perfil) (validated, shared.ValidationResult) {
	result := shared.NewValidator().
		Required(p.Nome, "Nome").
		MaxLength(p.Nome, 100, "Nome").
		Required(p.Email, "Email").
		MaxLength(p.Email, 200, "Email").
		Email(p.Email, "Email").
		CPF(p.Cpf, "CPF").
		GreaterThanOrEqual(p.IDBroker, 0, "IdBroker").
		GreaterThanOrEqual(p.IDLoja, 0, "IdLoja").
		GreaterThanOrEqual(p.IDVarejista, 0, "IdVarejista").
		Result()
	if !result.IsValid() {
		return validated{}, result
	}

	var vals validated
	vals.email, _ = shared.NewEmail(p.Email)
	if p.Cpf != "" {
		vals.cpf, _ = shared.NewCpf(p.Cpf)
	}
	return vals, result
}

func (u *Usuario) apply(p Perfil, vals validated) {
	u.nome = p.Nome
	u.email = vals.email
	u.cpf = vals.cpf
	u.idBroker = p.IDBroker
	u.idLoja = p.IDLoja
	u.idVarejista = p.IDVarejista
	u.empresaPadrao = p.EmpresaPadrao
	u.visAutcom = p.VisAutcom
	u.visAutemp = p.VisAutemp
}

func (u *Usuario) AtualizarPerfil(p Perfil, updatedBy string) error {
	p = p.normalized()
	vals, result := validate(p)
	if err := result.Err(entityName); err != nil {
		return err
	}
	if err := shared.TouchUpdatedBy(&u.Audit, updatedBy, time.Now()); err != nil {
		return err
	}
	u.apply(p, vals)
	return nil
}

// AlterarSenha requires the current password and refuses to reuse the
// current or the previous one.
func (u *Usuario) AlterarSenha(atual, nova, updatedBy string) error {
	if !u.senha.Matches(atual) {
		return shared.NewUnauthorizedError("Senha atual inválida")
	}
	hash, err := shared.NewSenha(nova)
	if err != nil {
		return err
	}
	if hash.Equals(u.senha) || hash.Equals(u.senhaAnterior) {
		return shared.NewBusinessRuleError(entityName, "A nova senha deve ser diferente das senhas anteriores")
	}
	if err := shared.TouchUpdatedBy(&u.Audit, updatedBy, time.Now()); err != nil {
		return err
	}
	u.senhaAnterior = u.senha
	u.senha = hash
	return nil
}

// PodeAcessar reports whether plain unlocks an active account.
func (u *Usuario) PodeAcessar(plain string) bool {
	return u.IsActive() && u.senha.Matches(plain)
}

func (u *Usuario) Activate(by string) error {
	return shared.Activate(&u.Audit, by, time.Now())
}

func (u *Usuario) Deactivate(by string) error {
	return shared.Deactivate(&u.Audit, by, time.Now())
}

func (u *Usuario) Nome() string                { return u.nome }
func (u *Usuario) Email() shared.Email         { return u.email }
func (u *Usuario) Cpf() shared.Cpf             { return u.cpf }
func (u *Usuario) Senha() shared.Senha         { return u.senha }
func (u *Usuario) SenhaAnterior() shared.Senha { return u.senhaAnterior }
func (u *Usuario) IDBroker() int64             { return u.idBroker }
func (u *Usuario) IDLoja() int64               { return u.idLoja }
func (u *Usuario) IDVarejista() int64          { return u.idVarejista }
func (u *Usuario) EmpresaPadrao() int          { return u.empresaPadrao }
func (u *Usuario) VisAutcom() bool             { return u.visAutcom }
func (u *Usuario) VisAutemp() bool             { return u.visAutemp }

func (u *Usuario) Perfil() Perfil {
	return Perfil{
		Nome:          u.nome,
		Email:         u.email.Value(),
		Cpf:           u.cpf.Value(),
		IDBroker:      u.idBroker,
		IDLoja:        u.idLoja,
		IDVarejista:   u.idVarejista,
		EmpresaPadrao: u.empresaPadrao,
		VisAutcom:     u.visAutcom,
		VisAutemp:     u.visAutemp,
	}
}

func (u *Usuario) AssignID(id int64) {
	shared.AssignID(&u.Audit, id)
	u.Rewrite(func(e shared.DomainEvent) shared.DomainEvent {
		if ue, ok := e.(*UsuarioEvent); ok && ue.usuarioID == 0 {
			clone := *ue
			clone.usuarioID = id
			return &clone
		}
		return e
	})
}

// Credenciais are the stored password hashes.
type Credenciais struct {
	Senha         string
	SenhaAnterior string
}

// Rebuild restores a Usuario loaded from storage. Repositories only.
func Rebuild(audit shared.AuditSnapshot, p Perfil, c Credenciais) *Usuario {
	u := &Usuario{
		Audit:         shared.RestoreAudit(audit),
		senha:         shared.SenhaFromHash(c.Senha),
		senhaAnterior: shared.SenhaFromHash(c.SenhaAnterior),
	}
	var vals validated
	vals.email, _ = shared.NewEmail(p.Email)
	vals.cpf, _ = shared.NewCpf(p.Cpf)
	u.apply(p, vals)
	return u
}

var _ shared.AggregateRoot = (*Usuario)(nil)
