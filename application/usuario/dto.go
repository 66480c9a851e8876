package usuario

import "ecommerce/application/common"

type CadastrarRequest struct {
	PerfilRequest
	Senha string `json:"senha" binding:"required"`
}

type PerfilRequest struct {
	Nome          string `json:"nome" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Cpf           string `json:"cpf"`
	IDBroker      int64  `json:"id_broker" binding:"min=0"`
	IDLoja        int64  `json:"id_loja" binding:"min=0"`
	IDVarejista   int64  `json:"id_varejista" binding:"min=0"`
	EmpresaPadrao int    `json:"empresa_padrao"`
	VisAutcom     bool   `json:"vis_autcom"`
	VisAutemp     bool   `json:"vis_autemp"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

type AlterarSenhaRequest struct {
	SenhaAtual string `json:"senha_atual" binding:"required"`
	NovaSenha  string `json:"nova_senha" binding:"required"`
}

// UsuarioResponse never carries password hashes.
type UsuarioResponse struct {
	common.AuditResponse
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	Cpf           string `json:"cpf,omitempty"`
	IDBroker      int64  `json:"id_broker"`
	IDLoja        int64  `json:"id_loja"`
	IDVarejista   int64  `json:"id_varejista"`
	EmpresaPadrao int    `json:"empresa_padrao"`
	VisAutcom     bool   `json:"vis_autcom"`
	VisAutemp     bool   `json:"vis_autemp"`
}
