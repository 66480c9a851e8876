package importacao

import (
	"time"

	"ecommerce/application/common"
	"ecommerce/domain/shared"
)

// DetalheRequest is one sale line, as received over HTTP or from a batch file.
type DetalheRequest struct {
	Broker           string     `json:"broker" yaml:"broker"`
	CdCartao         string     `json:"cd_cartao" yaml:"cd_cartao"`
	CpfComprador     string     `json:"cpf_comprador" yaml:"cpf_comprador"`
	DataCancelamento *time.Time `json:"data_cancelamento,omitempty" yaml:"data_cancelamento"`
	DataCriacao      time.Time  `json:"data_criacao" yaml:"data_criacao"`
	DataValidade     time.Time  `json:"data_validade" yaml:"data_validade"`
	DataVenda        time.Time  `json:"data_venda" yaml:"data_venda"`
	IDLog            int64      `json:"id_log" yaml:"id_log"`
	Loja             string     `json:"loja" yaml:"loja"`
	Observacao       string     `json:"observacao" yaml:"observacao"`
	Status           string     `json:"status" yaml:"status"`
	Varejista        string     `json:"varejista" yaml:"varejista"`
	Vendedor         string     `json:"vendedor" yaml:"vendedor"`
}

// Batch is a set of lines imported together. Lines without an id_log
// inherit the batch's.
type Batch struct {
	IDLog    int64            `json:"id_log" yaml:"id_log"`
	Detalhes []DetalheRequest `json:"detalhes" yaml:"detalhes" binding:"required,min=1"`
}

type DetalheResponse struct {
	common.AuditResponse
	Broker           string     `json:"broker,omitempty"`
	CdCartao         string     `json:"cd_cartao,omitempty"`
	CpfComprador     string     `json:"cpf_comprador,omitempty"`
	DataCancelamento *time.Time `json:"data_cancelamento,omitempty"`
	DataCriacao      time.Time  `json:"data_criacao"`
	DataValidade     time.Time  `json:"data_validade"`
	DataVenda        time.Time  `json:"data_venda"`
	IDLog            int64      `json:"id_log"`
	Loja             string     `json:"loja,omitempty"`
	Observacao       string     `json:"observacao,omitempty"`
	Status           string     `json:"status,omitempty"`
	Varejista        string     `json:"varejista,omitempty"`
	Vendedor         string     `json:"vendedor,omitempty"`
}

// LinhaRejeitada reports why one line of a batch was not imported. Linha is
// 1-based.
type LinhaRejeitada struct {
	Linha      int                `json:"linha"`
	Violations []shared.Violation `json:"violations"`
}

type ImportReport struct {
	Total      int              `json:"total"`
	Importados int              `json:"importados"`
	Rejeitados int              `json:"rejeitados"`
	IDs        []int64          `json:"ids"`
	Rejeicoes  []LinhaRejeitada `json:"rejeicoes,omitempty"`
}
