package po

import "ecommerce/domain/loja"

type LojaPO struct {
	IdLoja      int64  `gorm:"column:IdLoja;primaryKey;autoIncrement"`
	CdCnpj      string `gorm:"column:CdCnpj;size:50;index"`
	CdLoja      string `gorm:"column:CdLoja;size:50;index"`
	IdLojista   int64  `gorm:"column:IdLojista;index"`
	IdVarejista int64  `gorm:"column:IdVarejista;index"`
	NmLoja      string `gorm:"column:NmLoja;size:100"`
	TxEndereco  string `gorm:"column:TxEndereco;size:255"`
	AuditColumns
}

func (LojaPO) TableName() string {
	return "Lojas"
}

func FromLojaDomain(l *loja.Loja) *LojaPO {
	return &LojaPO{
		IdLoja:       l.ID(),
		CdCnpj:       l.Cnpj().Value(),
		CdLoja:       l.Codigo(),
		IdLojista:    l.IDLojista(),
		IdVarejista:  l.IDVarejista(),
		NmLoja:       l.Nome(),
		TxEndereco:   l.Endereco(),
		AuditColumns: auditColumns(l.Audit),
	}
}

func (p *LojaPO) ToDomain() *loja.Loja {
	return loja.Rebuild(p.snapshot(p.IdLoja), loja.Dados{
		Cnpj:        p.CdCnpj,
		Codigo:      p.CdLoja,
		IDLojista:   p.IdLojista,
		IDVarejista: p.IdVarejista,
		Nome:        p.NmLoja,
		Endereco:    p.TxEndereco,
	})
}
