package po

import "ecommerce/domain/brokervarejista"

type BrokerVarejistaPO struct {
	IdSequencial int64 `gorm:"column:IdSequencial;primaryKey;autoIncrement"`
	IdBroker     int64 `gorm:"column:IdBroker;index:idx_broker_varejista,unique"`
	IdVarejista  int64 `gorm:"column:IdVarejista;index:idx_broker_varejista,unique;index"`
	AuditColumns
}

func (BrokerVarejistaPO) TableName() string {
	return "Brokers_Varejistas"
}

func FromBrokerVarejistaDomain(bv *brokervarejista.BrokerVarejista) *BrokerVarejistaPO {
	return &BrokerVarejistaPO{
		IdSequencial: bv.ID(),
		IdBroker:     bv.IDBroker(),
		IdVarejista:  bv.IDVarejista(),
		AuditColumns: auditColumns(bv.Audit),
	}
}

func (p *BrokerVarejistaPO) ToDomain() *brokervarejista.BrokerVarejista {
	return brokervarejista.Rebuild(p.snapshot(p.IdSequencial), p.IdBroker, p.IdVarejista)
}
