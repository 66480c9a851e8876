package importacao

import (
	"strings"
	"time"

	"ecommerce/domain/shared"
)

const entityName = "log_importacao_varejo_detalhe"

const (
	textoMaxLen      = 255
	cpfMaxLen        = 11
	observacaoMaxLen = 1255
	statusMaxLen     = 100
)

// Dados is one imported sale line.
type Dados struct {
	Broker           string
	CdCartao         string
	CpfComprador     string
	DataCancelamento *time.Time
	DataCriacao      time.Time
	DataValidade     time.Time
	DataVenda        time.Time
	IDLog            int64
	Loja             string
	Observacao       string
	Status           string
	Varejista        string
	Vendedor         string
}

func (d Dados) normalized() Dados {
	d.Broker = strings.TrimSpace(d.Broker)
	d.CdCartao = strings.TrimSpace(d.CdCartao)
	d.CpfComprador = strings.TrimSpace(d.CpfComprador)
	d.Loja = strings.TrimSpace(d.Loja)
	d.Observacao = strings.TrimSpace(d.Observacao)
	d.Status = strings.TrimSpace(d.Status)
	d.Varejista = strings.TrimSpace(d.Varejista)
	d.Vendedor = strings.TrimSpace(d.Vendedor)
	return d
}

// Detalhe is a LogImportacaoVarejoDetalhe row.
type Detalhe struct {
	shared.Audit
	shared.EventRecorder

	dados Dados
	cpf   shared.Cpf
}

func New(d Dados, createdBy string) (*Detalhe, error) {
	return newAt(d, createdBy, time.Now())
}

func newAt(d Dados, createdBy string, now time.Time) (*Detalhe, error) {
	d = d.normalized()
	audit := shared.NewAudit(createdBy, now)
	cpf, result := Validate(d, now)
	if err := shared.Combine(result, shared.ValidateAudit(audit)).Err(entityName); err != nil {
		return nil, err
	}

	det := &Detalhe{Audit: audit}
	det.apply(d, cpf)
	det.Record(NewDetalheEvent(det.ID(), d.Broker, d.CdCartao, cpf.Value(), det.CreatedBy()))
	return det, nil
}

// Validate checks one line against now; batch imports use it to report
// every bad row without building the entity.
func Validate(d Dados, now time.Time) (shared.Cpf, shared.ValidationResult) {
	d = d.normalized()
	v := shared.NewValidator().
		MaxLength(d.Broker, textoMaxLen, "Broker").
		MaxLength(d.CdCartao, textoMaxLen, "CdCartao").
		MaxLength(d.CpfComprador, cpfMaxLen, "CPF").
		CPF(d.CpfComprador, "CPF").
		GreaterThanOrEqual(d.IDLog, 0, "IdLog").
		MaxLength(d.Loja, textoMaxLen, "Loja").
		MaxLength(d.Observacao, observacaoMaxLen, "Observacao").
		MaxLength(d.Status, statusMaxLen, "Status").
		MaxLength(d.Varejista, textoMaxLen, "Varejista").
		MaxLength(d.Vendedor, textoMaxLen, "Vendedor").
		Check(!d.DataValidade.Before(d.DataCriacao), "DataValidade", shared.CodeDate,
			"Data de validade não pode ser menor que a data de criação").
		Check(!d.DataVenda.After(now), "DataVenda", shared.CodeDate,
			"Data de venda não pode ser futura")
	if d.DataCancelamento != nil {
		v.Check(!d.DataCancelamento.Before(d.DataVenda), "DataCancelamento", shared.CodeDate,
			"Data de cancelamento não pode ser menor que a data de venda")
	}

	result := v.Result()
	var cpf shared.Cpf
	if result.IsValid() && d.CpfComprador != "" {
		cpf, _ = shared.NewCpf(d.CpfComprador)
	}
	return cpf, result
}

func (det *Detalhe) apply(d Dados, cpf shared.Cpf) {
	det.dados = d
	det.cpf = cpf
	if !cpf.IsZero() {
		det.dados.CpfComprador = cpf.Value()
	}
	if d.DataCancelamento != nil {
		t := *d.DataCancelamento
		det.dados.DataCancelamento = &t
	}
}

func (det *Detalhe) AtualizarDados(d Dados, updatedBy string) error {
	d = d.normalized()
	cpf, result := Validate(d, time.Now())
	if err := result.Err(entityName); err != nil {
		return err
	}
	if err := shared.TouchUpdatedBy(&det.Audit, updatedBy, time.Now()); err != nil {
		return err
	}
	det.apply(d, cpf)
	return nil
}

// IDDetalhe is the row id.
func (det *Detalhe) IDDetalhe() int64         { return det.ID() }
func (det *Detalhe) Broker() string           { return det.dados.Broker }
func (det *Detalhe) CdCartao() string         { return det.dados.CdCartao }
func (det *Detalhe) CpfComprador() shared.Cpf { return det.cpf }
func (det *Detalhe) DataCriacao() time.Time   { return det.dados.DataCriacao }
func (det *Detalhe) DataValidade() time.Time  { return det.dados.DataValidade }
func (det *Detalhe) DataVenda() time.Time     { return det.dados.DataVenda }
func (det *Detalhe) IDLog() int64             { return det.dados.IDLog }
func (det *Detalhe) Loja() string             { return det.dados.Loja }
func (det *Detalhe) Observacao() string       { return det.dados.Observacao }
func (det *Detalhe) Status() string           { return det.dados.Status }
func (det *Detalhe) Varejista() string        { return det.dados.Varejista }
func (det *Detalhe) Vendedor() string         { return det.dados.Vendedor }
func (det *Detalhe) DataCancelamento() *time.Time {
	if det.dados.DataCancelamento == nil {
		return nil
	}
	t := *det.dados.DataCancelamento
	return &t
}

func (det *Detalhe) Dados() Dados {
	d := det.dados
	d.DataCancelamento = det.DataCancelamento()
	return d
}

func (det *Detalhe) AssignID(id int64) {
	shared.AssignID(&det.Audit, id)
	det.Rewrite(func(e shared.DomainEvent) shared.DomainEvent {
		if de, ok := e.(*DetalheEvent); ok && de.idDetalhe == 0 {
			clone := *de
			clone.idDetalhe = id
			return &clone
		}
		return e
	})
}

// Rebuild restores a row loaded from storage. Repositories only.
func Rebuild(audit shared.AuditSnapshot, d Dados) *Detalhe {
	det := &Detalhe{Audit: shared.RestoreAudit(audit)}
	cpf, _ := shared.NewCpf(d.CpfComprador)
	det.apply(d, cpf)
	return det
}

var _ shared.AggregateRoot = (*Detalhe)(nil)
