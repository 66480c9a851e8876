package brokervarejista

import (
	"ecommerce/application/common"
	"ecommerce/domain/brokervarejista"
)

func toVinculoResponse(bv *brokervarejista.BrokerVarejista) *VinculoResponse {
	return &VinculoResponse{
		AuditResponse: common.NewAuditResponse(bv.Audit),
		IDBroker:      bv.IDBroker(),
		IDVarejista:   bv.IDVarejista(),
	}
}

func toVinculoResponses(list []*brokervarejista.BrokerVarejista) []*VinculoResponse {
	out := make([]*VinculoResponse, len(list))
	for i, bv := range list {
		out[i] = toVinculoResponse(bv)
	}
	return out
}
