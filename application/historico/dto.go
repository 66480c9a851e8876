package historico

import (
	"time"

	"ecommerce/application/common"
)

type RegistrarRequest struct {
	Acao       string `json:"acao" binding:"required"`
	Detalhe    string `json:"detalhe" binding:"required"`
	Tabela     string `json:"tabela"`
	IDEmpresa  int64  `json:"id_empresa" binding:"min=0"`
	UsuarioCod int64  `json:"usuario_cod" binding:"min=0"`
}

type HistoricoResponse struct {
	common.AuditResponse
	Acao       string    `json:"acao"`
	Data       time.Time `json:"data"`
	Detalhe    string    `json:"detalhe"`
	Tabela     string    `json:"tabela,omitempty"`
	IDEmpresa  int64     `json:"id_empresa"`
	UsuarioCod int64     `json:"usuario_cod"`
}
