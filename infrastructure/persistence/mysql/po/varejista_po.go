package po

import "ecommerce/domain/varejista"

type VarejistaPO struct {
	IdVarejista int64  `gorm:"column:IdVarejista;primaryKey;autoIncrement"`
	CdCnpj      string `gorm:"column:CdCnpj;size:50;index"`
	CdBanner    string `gorm:"column:CdBanner;size:50"`
	CdCorFundo  string `gorm:"column:CdCorFundo;size:50"`
	CdVarejista string `gorm:"column:CdVarejista;size:50"`
	NmVarejista string `gorm:"column:NmVarejista;size:100;index"`
	TxLinkSite  string `gorm:"column:TxLinkSite;size:255"`
	AuditColumns
}

func (VarejistaPO) TableName() string {
	return "Varejistas"
}

func FromVarejistaDomain(v *varejista.Varejista) *VarejistaPO {
	return &VarejistaPO{
		IdVarejista:  v.ID(),
		CdCnpj:       v.Cnpj().Value(),
		CdBanner:     v.Banner(),
		CdCorFundo:   v.CorFundo(),
		CdVarejista:  v.Codigo(),
		NmVarejista:  v.Nome(),
		TxLinkSite:   v.Site(),
		AuditColumns: auditColumns(v.Audit),
	}
}

func (p *VarejistaPO) ToDomain() *varejista.Varejista {
	return varejista.Rebuild(p.snapshot(p.IdVarejista), varejista.Dados{
		Cnpj:     p.CdCnpj,
		Banner:   p.CdBanner,
		CorFundo: p.CdCorFundo,
		Codigo:   p.CdVarejista,
		Nome:     p.NmVarejista,
		Site:     p.TxLinkSite,
	})
}
