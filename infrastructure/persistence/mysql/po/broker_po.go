package po

import "ecommerce/domain/broker"

type BrokerPO struct {
	IdBroker int64  `gorm:"column:IdBroker;primaryKey;autoIncrement"`
	NmBroker string `gorm:"column:NmBroker;size:100;not null;index"`
	AuditColumns
}

func (BrokerPO) TableName() string {
	return "Brokers"
}

func FromBrokerDomain(b *broker.Broker) *BrokerPO {
	return &BrokerPO{
		IdBroker:     b.ID(),
		NmBroker:     b.Nome(),
		AuditColumns: auditColumns(b.Audit),
	}
}

func (p *BrokerPO) ToDomain() *broker.Broker {
	return broker.Rebuild(p.snapshot(p.IdBroker), p.NmBroker)
}
