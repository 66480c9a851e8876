package importacao

import (
	"ecommerce/application/common"
	"ecommerce/domain/importacao"
)

func toDados(req DetalheRequest) importacao.Dados {
	return importacao.Dados{
		Broker:           req.Broker,
		CdCartao:         req.CdCartao,
		CpfComprador:     req.CpfComprador,
		DataCancelamento: req.DataCancelamento,
		DataCriacao:      req.DataCriacao,
		DataValidade:     req.DataValidade,
		DataVenda:        req.DataVenda,
		IDLog:            req.IDLog,
		Loja:             req.Loja,
		Observacao:       req.Observacao,
		Status:           req.Status,
		Varejista:        req.Varejista,
		Vendedor:         req.Vendedor,
	}
}

func toDetalheResponse(d *importacao.Detalhe) *DetalheResponse {
	return &DetalheResponse{
		AuditResponse:    common.NewAuditResponse(d.Audit),
		Broker:           d.Broker(),
		CdCartao:         d.CdCartao(),
		CpfComprador:     d.CpfComprador().Value(),
		DataCancelamento: d.DataCancelamento(),
		DataCriacao:      d.DataCriacao(),
		DataValidade:     d.DataValidade(),
		DataVenda:        d.DataVenda(),
		IDLog:            d.IDLog(),
		Loja:             d.Loja(),
		Observacao:       d.Observacao(),
		Status:           d.Status(),
		Varejista:        d.Varejista(),
		Vendedor:         d.Vendedor(),
	}
}

func toDetalheResponses(list []*importacao.Detalhe) []*DetalheResponse {
	out := make([]*DetalheResponse, len(list))
	for i, d := range list {
		out[i] = toDetalheResponse(d)
	}
	return out
}
