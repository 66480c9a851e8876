package po

import (
	"time"

	"ecommerce/domain/importacao"
)

type DetalhePO struct {
	IdDetalhe        int64      `gorm:"column:IdDetalhe;primaryKey;autoIncrement"`
	Broker           string     `gorm:"column:Broker;size:255"`
	CdCartao         string     `gorm:"column:CdCartao;size:255"`
	CpfComprador     string     `gorm:"column:CpfComprador;size:255"`
	DataCancelamento *time.Time `gorm:"column:DataCancelamento"`
	DataCriacao      time.Time  `gorm:"column:DataCriacao"`
	DataValidade     time.Time  `gorm:"column:DataValidade"`
	DataVenda        time.Time  `gorm:"column:DataVenda"`
	IdLog            int64      `gorm:"column:IdLog;index"`
	Loja             string     `gorm:"column:Loja;size:255"`
	Observacao       string     `gorm:"column:Observacao;size:1255"`
	Status           string     `gorm:"column:Status;size:100"`
	Varejista        string     `gorm:"column:Varejista;size:255"`
	Vendedor         string     `gorm:"column:Vendedor;size:255"`
	AuditColumns
}

func (DetalhePO) TableName() string {
	return "LogImportacaoVarejoDetalhe"
}

func FromDetalheDomain(d *importacao.Detalhe) *DetalhePO {
	return &DetalhePO{
		IdDetalhe:        d.ID(),
		Broker:           d.Broker(),
		CdCartao:         d.CdCartao(),
		CpfComprador:     d.CpfComprador().Value(),
		DataCancelamento: d.DataCancelamento(),
		DataCriacao:      d.DataCriacao(),
		DataValidade:     d.DataValidade(),
		DataVenda:        d.DataVenda(),
		IdLog:            d.IDLog(),
		Loja:             d.Loja(),
		Observacao:       d.Observacao(),
		Status:           d.Status(),
		Varejista:        d.Varejista(),
		Vendedor:         d.Vendedor(),
		AuditColumns:     auditColumns(d.Audit),
	}
}

func (p *DetalhePO) ToDomain() *importacao.Detalhe {
	return importacao.Rebuild(p.snapshot(p.IdDetalhe), importacao.Dados{
		Broker:           p.Broker,
		CdCartao:         p.CdCartao,
		CpfComprador:     p.CpfComprador,
		DataCancelamento: p.DataCancelamento,
		DataCriacao:      p.DataCriacao,
		DataValidade:     p.DataValidade,
		DataVenda:        p.DataVenda,
		IDLog:            p.IdLog,
		Loja:             p.Loja,
		Observacao:       p.Observacao,
		Status:           p.Status,
		Varejista:        p.Varejista,
		Vendedor:         p.Vendedor,
	})
}
