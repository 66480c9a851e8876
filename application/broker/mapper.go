package broker

import (
	"ecommerce/application/common"
	"ecommerce/domain/broker"
)

func toBrokerResponse(b *broker.Broker) *BrokerResponse {
	return &BrokerResponse{
		AuditResponse: common.NewAuditResponse(b.Audit),
		Nome:          b.Nome(),
	}
}

func toBrokerResponses(brokers []*broker.Broker) []*BrokerResponse {
	out := make([]*BrokerResponse, len(brokers))
	for i, b := range brokers {
		out[i] = toBrokerResponse(b)
	}
	return out
}
