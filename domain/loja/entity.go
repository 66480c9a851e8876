package loja

import (
	"strings"
	"time"

	"ecommerce/domain/shared"
)

const entityName = "loja"

type Dados struct {
	Cnpj        string
	Codigo      string
	IDLojista   int64
	IDVarejista int64
	Nome        string
	Endereco    string
}

func (d Dados) normalized() Dados {
	d.Cnpj = strings.TrimSpace(d.Cnpj)
	d.Codigo = strings.TrimSpace(d.Codigo)
	d.Nome = strings.TrimSpace(d.Nome)
	d.Endereco = strings.TrimSpace(d.Endereco)
	return d
}

// Loja is a store that belongs to one retailer.
type Loja struct {
	shared.Audit
	shared.EventRecorder

	cnpj        shared.Cnpj
	codigo      string
	idLojista   int64
	idVarejista int64
	nome        string
	endereco    string
}

func New(d Dados, createdBy string) (*Loja, error) {
	d = d.normalized()
	audit := shared.NewAudit(createdBy, time.Now())
	cnpj, result := validate(d)
	if err := shared.Combine(result, shared.ValidateAudit(audit)).Err(entityName); err != nil {
		return nil, err
	}

	l := &Loja{Audit: audit}
	l.apply(d, cnpj)
	l.Record(NewLojaEvent(l.ID(), l.nome, l.cnpj.Value(), l.idVarejista, l.CreatedBy()))
	return l, nil
}

func validate(d Dados) (shared.Cnpj, shared.ValidationResult) {
	result := shared.NewValidator().
		Required(d.Cnpj, "CNPJ").
		CNPJ(d.Cnpj, "CNPJ").
		MaxLength(d.Codigo, 50, "Código").
		GreaterThanOrEqual(d.IDLojista, 0, "IdLojista").
		GreaterThanOrEqual(d.IDVarejista, 0, "IdVarejista").
		RequiredWithMessage(d.Nome, "Nome", "Nome da loja é obrigatório").
		MaxLength(d.Nome, 100, "Nome").
		MaxLength(d.Endereco, 255, "Endereço").
		Result()
	if !result.IsValid() {
		return shared.Cnpj{}, result
	}
	cnpj, err := shared.NewCnpj(d.Cnpj)
	if err != nil {
		return shared.Cnpj{}, shared.NewValidationResult(shared.Violation{Field: "CNPJ", Code: shared.CodeCNPJ, Message: "CNPJ inválido"})
	}
	return cnpj, result
}

func (l *Loja) apply(d Dados, cnpj shared.Cnpj) {
	l.cnpj = cnpj
	l.codigo = d.Codigo
	l.idLojista = d.IDLojista
	l.idVarejista = d.IDVarejista
	l.nome = d.Nome
	l.endereco = d.Endereco
}

func (l *Loja) AtualizarDados(d Dados, updatedBy string) error {
	d = d.normalized()
	cnpj, result := validate(d)
	if err := result.Err(entityName); err != nil {
		return err
	}
	if err := shared.TouchUpdatedBy(&l.Audit, updatedBy, time.Now()); err != nil {
		return err
	}
	l.apply(d, cnpj)
	return nil
}

func (l *Loja) Activate(by string) error {
	return shared.Activate(&l.Audit, by, time.Now())
}

func (l *Loja) Deactivate(by string) error {
	return shared.Deactivate(&l.Audit, by, time.Now())
}

func (l *Loja) Cnpj() shared.Cnpj  { return l.cnpj }
func (l *Loja) Codigo() string     { return l.codigo }
func (l *Loja) IDLojista() int64   { return l.idLojista }
func (l *Loja) IDVarejista() int64 { return l.idVarejista }
func (l *Loja) Nome() string       { return l.nome }
func (l *Loja) Endereco() string   { return l.endereco }

func (l *Loja) Dados() Dados {
	return Dados{
		Cnpj:        l.cnpj.Value(),
		Codigo:      l.codigo,
		IDLojista:   l.idLojista,
		IDVarejista: l.idVarejista,
		Nome:        l.nome,
		Endereco:    l.endereco,
	}
}

func (l *Loja) AssignID(id int64) {
	shared.AssignID(&l.Audit, id)
	l.Rewrite(func(e shared.DomainEvent) shared.DomainEvent {
		if le, ok := e.(*LojaEvent); ok && le.lojaID == 0 {
			clone := *le
			clone.lojaID = id
			return &clone
		}
		return e
	})
}

// Rebuild restores a Loja loaded from storage. Repositories only.
func Rebuild(audit shared.AuditSnapshot, d Dados) *Loja {
	l := &Loja{Audit: shared.RestoreAudit(audit)}
	cnpj, _ := shared.NewCnpj(d.Cnpj)
	l.apply(d, cnpj)
	return l
}

var _ shared.AggregateRoot = (*Loja)(nil)
