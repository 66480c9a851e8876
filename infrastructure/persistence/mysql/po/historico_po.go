package po

import (
	"time"

	"ecommerce/domain/historico"
)

type HistoricoPO struct {
	Historicos_Cod int64     `gorm:"column:Historicos_Cod;primaryKey;autoIncrement"`
	Historicos_Aca string    `gorm:"column:Historicos_Aca;size:1;not null"`
	Historicos_Dat time.Time `gorm:"column:Historicos_Dat;not null"`
	Historicos_Det string    `gorm:"column:Historicos_Det;size:500;not null"`
	Historicos_Tab string    `gorm:"column:Historicos_Tab;size:150"`
	IdEmpresa      int64     `gorm:"column:IdEmpresa;index"`
	Usuarios_Cod   int64     `gorm:"column:Usuarios_Cod;index"`
	AuditColumns
}

func (HistoricoPO) TableName() string {
	return "Historicos"
}

func FromHistoricoDomain(h *historico.Historico) *HistoricoPO {
	return &HistoricoPO{
		Historicos_Cod: h.ID(),
		Historicos_Aca: h.Acao().Value(),
		Historicos_Dat: h.Data(),
		Historicos_Det: h.Detalhe(),
		Historicos_Tab: h.Tabela(),
		IdEmpresa:      h.IDEmpresa(),
		Usuarios_Cod:   h.UsuarioCod(),
		AuditColumns:   auditColumns(h.Audit),
	}
}

func (p *HistoricoPO) ToDomain() *historico.Historico {
	return historico.Rebuild(p.snapshot(p.Historicos_Cod), p.Historicos_Dat, historico.Dados{
		Acao:       p.Historicos_Aca,
		Detalhe:    p.Historicos_Det,
		Tabela:     p.Historicos_Tab,
		IDEmpresa:  p.IdEmpresa,
		UsuarioCod: p.Usuarios_Cod,
	})
}
