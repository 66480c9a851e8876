package broker

import "ecommerce/application/common"

// BrokerRequest is the input of Cadastrar and Atualizar.
type BrokerRequest struct {
	Nome string `json:"nome" binding:"required"`
}

type BrokerResponse struct {
	common.AuditResponse
	Nome string `json:"nome"`
}
