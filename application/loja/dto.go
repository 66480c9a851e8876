package loja

import "ecommerce/application/common"

type LojaRequest struct {
	Cnpj        string `json:"cnpj" binding:"required"`
	Codigo      string `json:"codigo"`
	IDLojista   int64  `json:"id_lojista" binding:"min=0"`
	IDVarejista int64  `json:"id_varejista" binding:"min=0"`
	Nome        string `json:"nome" binding:"required"`
	Endereco    string `json:"endereco"`
}

type LojaResponse struct {
	common.AuditResponse
	Cnpj        string `json:"cnpj"`
	Codigo      string `json:"codigo,omitempty"`
	IDLojista   int64  `json:"id_lojista"`
	IDVarejista int64  `json:"id_varejista"`
	Nome        string `json:"nome"`
	Endereco    string `json:"endereco,omitempty"`
}
