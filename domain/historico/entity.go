package historico

import (
	"strings"
	"time"

	"ecommerce/domain/shared"
)

const entityName = "historicos"

type Dados struct {
	Acao       string
	Detalhe    string
	Tabela     string
	IDEmpresa  int64
	UsuarioCod int64
}

func (d Dados) normalized() Dados {
	d.Acao = strings.ToUpper(strings.TrimSpace(d.Acao))
	d.Detalhe = strings.TrimSpace(d.Detalhe)
	d.Tabela = strings.TrimSpace(d.Tabela)
	return d
}

// Historico is one audit-trail entry: who changed which table, and how.
type Historico struct {
	shared.Audit
	shared.EventRecorder

	acao       shared.HistoryAction
	data       time.Time
	detalhe    string
	tabela     string
	idEmpresa  int64
	usuarioCod int64
}

func New(d Dados, createdBy string) (*Historico, error) {
	d = d.normalized()
	now := time.Now()
	audit := shared.NewAudit(createdBy, now)
	acao, result := validate(d)
	if err := shared.Combine(result, shared.ValidateAudit(audit)).Err(entityName); err != nil {
		return nil, err
	}

	h := &Historico{Audit: audit, data: now.UTC()}
	h.apply(d, acao)
	h.Record(NewHistoricoEvent(h.ID(), h.acao.Value(), h.data, h.CreatedBy()))
	return h, nil
}

func validate(d Dados) (shared.HistoryAction, shared.ValidationResult) {
	v := shared.NewValidator().
		RequiredWithMessage(d.Acao, "Ação", "Ação é obrigatória")
	if d.Acao != "" {
		v.ExactLength(d.Acao, 1, "Ação")
	}
	v.RequiredWithMessage(d.Detalhe, "Detalhe", "Descrição é obrigatória").
		MaxLength(d.Detalhe, 500, "Detalhe").
		MaxLength(d.Tabela, 150, "Tabela").
		GreaterThanOrEqual(d.IDEmpresa, 0, "IdEmpresa").
		GreaterThanOrEqual(d.UsuarioCod, 0, "Usuarios_Cod")

	var acao shared.HistoryAction
	if len(d.Acao) == 1 {
		a, err := shared.NewHistoryAction(d.Acao)
		v.Check(err == nil, "Ação", "action", "Ação inválida. Use I, U ou D")
		acao = a
	}
	return acao, v.Result()
}

func (h *Historico) apply(d Dados, acao shared.HistoryAction) {
	h.acao = acao
	h.detalhe = d.Detalhe
	h.tabela = d.Tabela
	h.idEmpresa = d.IDEmpresa
	h.usuarioCod = d.UsuarioCod
}

// AtualizarDados rewrites the entry; the event date moves to now.
func (h *Historico) AtualizarDados(d Dados, updatedBy string) error {
	d = d.normalized()
	acao, result := validate(d)
	if err := result.Err(entityName); err != nil {
		return err
	}
	if err := shared.TouchUpdatedBy(&h.Audit, updatedBy, time.Now()); err != nil {
		return err
	}
	h.apply(d, acao)
	h.Record(NewHistoricoEvent(h.ID(), h.acao.Value(), h.data, h.UpdatedBy()))
	return nil
}

func (h *Historico) Acao() shared.HistoryAction { return h.acao }
func (h *Historico) Data() time.Time            { return h.data }
func (h *Historico) Detalhe() string            { return h.detalhe }
func (h *Historico) Tabela() string             { return h.tabela }
func (h *Historico) IDEmpresa() int64           { return h.idEmpresa }
func (h *Historico) UsuarioCod() int64          { return h.usuarioCod }

func (h *Historico) Dados() Dados {
	return Dados{
		Acao:       h.acao.Value(),
		Detalhe:    h.detalhe,
		Tabela:     h.tabela,
		IDEmpresa:  h.idEmpresa,
		UsuarioCod: h.usuarioCod,
	}
}

func (h *Historico) AssignID(id int64) {
	shared.AssignID(&h.Audit, id)
	h.Rewrite(func(e shared.DomainEvent) shared.DomainEvent {
		if he, ok := e.(*HistoricoEvent); ok && he.cod == 0 {
			clone := *he
			clone.cod = id
			return &clone
		}
		return e
	})
}

// Rebuild restores an entry loaded from storage. Repositories only.
func Rebuild(audit shared.AuditSnapshot, data time.Time, d Dados) *Historico {
	acao, _ := shared.NewHistoryAction(d.Acao)
	h := &Historico{Audit: shared.RestoreAudit(audit), data: data.UTC()}
	h.apply(d, acao)
	return h
}

var _ shared.AggregateRoot = (*Historico)(nil)
