package brokervarejista

import "ecommerce/application/common"

type VincularRequest struct {
	IDBroker    int64 `json:"id_broker" binding:"required"`
	IDVarejista int64 `json:"id_varejista" binding:"required"`
}

type VinculoResponse struct {
	common.AuditResponse
	IDBroker    int64 `json:"id_broker"`
	IDVarejista int64 `json:"id_varejista"`
}
