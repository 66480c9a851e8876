package varejista

import "ecommerce/application/common"

type VarejistaRequest struct {
	Cnpj     string `json:"cnpj" binding:"required"`
	Banner   string `json:"banner"`
	CorFundo string `json:"cor_fundo"`
	Codigo   string `json:"codigo"`
	Nome     string `json:"nome" binding:"required"`
	Site     string `json:"site"`
}

type VarejistaResponse struct {
	common.AuditResponse
	Cnpj     string `json:"cnpj"`
	Banner   string `json:"banner,omitempty"`
	CorFundo string `json:"cor_fundo,omitempty"`
	Codigo   string `json:"codigo,omitempty"`
	Nome     string `json:"nome"`
	Site     string `json:"site,omitempty"`
}
